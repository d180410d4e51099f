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

type scopedRecord struct {
	id   int
	name string
	desc string
}

// newScopedCmd ports example04.c: for each record the "Structures" pool is
// selected with Set, and the "Elements" pool is pushed with Push for the
// record's string fields and popped afterwards. The records themselves are
// ordinary Go values; nothing is allocated in the "Structures" pool.
func newScopedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "scoped",
		Short: "Build records across two pools, switching with Push/Pop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoped(count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of records to build")
	return cmd
}

func runScoped(count int) error {
	structPool, err := arena.New("Structures")
	if err != nil {
		return err
	}
	elemPool, err := arena.New("Elements")
	if err != nil {
		return err
	}

	title, err := arena.DupString(fmt.Sprintf("Building %d records across two pools using Push/Pop", count))
	if err != nil {
		return err
	}

	records := make([]scopedRecord, count)
	for i := range records {
		if err := allocRecord(&records[i], i, structPool, elemPool); err != nil {
			return err
		}
	}

	fmt.Println(title)
	for _, r := range records {
		fmt.Printf("Record -> ID <%d>, Name: <%s>, Description: <%s>\n", r.id, r.name, r.desc)
	}

	if err := report.Write(os.Stdout, arena.Default()); err != nil {
		return err
	}

	return arena.DeleteAll()
}

func allocRecord(r *scopedRecord, id int, structPool, elemPool arena.Handle) error {
	if err := arena.Set(structPool); err != nil {
		return err
	}
	r.id = id

	if err := arena.Push(elemPool); err != nil {
		return err
	}
	defer arena.Pop()

	name, err := arena.DupString(fmt.Sprintf("Record %d", id))
	if err != nil {
		return err
	}
	desc, err := arena.DupString(fmt.Sprintf("This is record number %d", id))
	if err != nil {
		return err
	}
	r.name, r.desc = name, desc
	return nil
}
