// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report renders an Allocator's pool statistics as a framed table,
// the Go-idiomatic replacement for the fixed-width columns mpprn() built by
// hand in the original implementation.
package report

import (
	"fmt"
	"io"

	"code.hybscloud.com/arena"
	"github.com/olekukonko/tablewriter"
)

// sizeUnits mirrors the original reporter's b/Kb/Mb/Gb/Tb/Pb rounding table.
var sizeUnits = []struct {
	suffix string
	div    int64
}{
	{"b", 1},
	{"Kb", 1024},
	{"Mb", 1024 * 1024},
	{"Gb", 1024 * 1024 * 1024},
	{"Tb", 1024 * 1024 * 1024 * 1024},
	{"Pb", 1024 * 1024 * 1024 * 1024 * 1024},
}

// humanSize rounds size up into the smallest unit it fits under 1000 of.
func humanSize(size int64) string {
	unit := sizeUnits[len(sizeUnits)-1]
	for _, u := range sizeUnits {
		if size < u.div*1000 {
			unit = u
			break
		}
	}
	return fmt.Sprintf("%.1f%s", float64(size)/float64(unit.div), unit.suffix)
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Write renders a out of the given Allocator's Stats() snapshot, one row
// per initialized pool plus a totals row, in handle order.
func Write(w io.Writer, a *arena.Allocator) error {
	stats := a.Stats()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"MPID", "Descr", "Blocks", "Size", "Used", "Used %", "Free", "Free %"})

	var totBlocks int
	var totSize, totUsed int64
	for _, s := range stats {
		totBlocks += s.Blocks
		totSize += s.Size
		totUsed += s.Used

		// The Descr column holds at most 15 bytes of the label.
		label := s.Label
		if len(label) > 15 {
			label = label[:15]
		}

		table.Append([]string{
			fmt.Sprintf("%d", s.Handle),
			label,
			fmt.Sprintf("%d", s.Blocks),
			humanSize(s.Size),
			humanSize(s.Used),
			fmt.Sprintf("%.2f%%", percent(s.Used, s.Size)),
			humanSize(s.Size - s.Used),
			fmt.Sprintf("%.2f%%", percent(s.Size-s.Used, s.Size)),
		})
	}

	table.SetFooter([]string{
		"Total", "",
		fmt.Sprintf("%d", totBlocks),
		humanSize(totSize),
		humanSize(totUsed),
		fmt.Sprintf("%.2f%%", percent(totUsed, totSize)),
		humanSize(totSize - totUsed),
		fmt.Sprintf("%.2f%%", percent(totSize-totUsed, totSize)),
	})

	table.Render()
	return nil
}
