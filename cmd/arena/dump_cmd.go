// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/arena"
	"code.hybscloud.com/arena/dump"
	"github.com/spf13/cobra"
)

// newDumpCmd creates one pool holding a sample string, then writes a
// hex+ASCII dump of every live pool to a file, ad hoc tooling the original examples had no
// equivalent for since mpdmp() was only ever called interactively.
func newDumpCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Allocate a few values, then write a memory dump to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "arena-dump.txt", "dump file path")
	return cmd
}

func runDump(path string) error {
	h, err := arena.New("dump-example")
	if err != nil {
		return err
	}
	if _, err := arena.DupStringIn("sample payload for dumping", h); err != nil {
		return err
	}

	id, err := dump.ToFile(path, arena.Default())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s (id=%s)\n", path, id)
	return arena.DeleteAll()
}
