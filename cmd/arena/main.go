// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command arena runs small worked examples against the arena allocator:
// bulk allocation with bulk release, multiple named pools, and scoped
// pools built on Push/Pop, plus ad hoc report and dump commands. The multi,
// scoped and report commands end by printing a statistics report of every
// live pool; bulk and dump print no report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "arena",
		Short: "Worked examples for the arena memory allocator",
	}
	root.AddCommand(newBulkCmd())
	root.AddCommand(newMultiCmd())
	root.AddCommand(newScopedCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newDumpCmd())
	return root
}
