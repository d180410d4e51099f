// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/arena"
	"code.hybscloud.com/arena/report"
	"github.com/spf13/cobra"
)

// newMultiCmd ports example02.c: the default pool plus two named pools,
// each holding one string, followed by a statistics report.
func newMultiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multi",
		Short: "Allocate strings across the default pool and two named pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMulti()
		},
	}
}

func runMulti() error {
	strDefault, err := arena.DupString("This is default mp")
	if err != nil {
		return err
	}

	mp1, err := arena.New("MP 1")
	if err != nil {
		return err
	}
	if err := arena.Set(mp1); err != nil {
		return err
	}
	str1, err := arena.DupString("This is mp 1")
	if err != nil {
		return err
	}

	mp2, err := arena.New("MP 2")
	if err != nil {
		return err
	}
	if err := arena.Set(mp2); err != nil {
		return err
	}
	str2, err := arena.DupString("This is mp 2")
	if err != nil {
		return err
	}

	fmt.Printf("strdef: <%s>\n", strDefault)
	fmt.Printf("str1: <%s>\n", str1)
	fmt.Printf("str2: <%s>\n", str2)

	if err := report.Write(os.Stdout, arena.Default()); err != nil {
		return err
	}

	return arena.DeleteAll()
}
