// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"

	"code.hybscloud.com/arena"
	"github.com/spf13/cobra"
)

// newBulkCmd ports example01.c: allocate a batch of ints from the default
// pool, print them, then release everything at once with DeleteAll.
func newBulkCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Allocate a batch of integers then release them all at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of integers to allocate")
	return cmd
}

func runBulk(count int) error {
	ptrs := make([][]byte, count)
	for i := range ptrs {
		chunk, err := arena.Alloc(4)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(chunk, uint32(i*2))
		ptrs[i] = chunk
	}

	for i, chunk := range ptrs {
		fmt.Printf("j[%d] = %d\n", i, int32(binary.LittleEndian.Uint32(chunk)))
	}

	return arena.DeleteAll()
}
