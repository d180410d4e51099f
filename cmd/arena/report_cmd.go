// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"code.hybscloud.com/arena"
	"code.hybscloud.com/arena/report"
	"github.com/spf13/cobra"
)

// newReportCmd allocates a small spread of pools and prints their
// statistics table, standing in for an interactive mpprn() call.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Allocate a few pools then print a statistics table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport()
		},
	}
}

func runReport() error {
	for _, label := range []string{"Alpha", "Beta", "Gamma"} {
		h, err := arena.New(label)
		if err != nil {
			return err
		}
		if _, err := arena.AllocIn(len(label)*64, h); err != nil {
			return err
		}
	}

	if err := report.Write(os.Stdout, arena.Default()); err != nil {
		return err
	}
	return arena.DeleteAll()
}
