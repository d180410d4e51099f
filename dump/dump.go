// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dump writes a hex+ASCII snapshot of an Allocator's live memory to
// a file, the Go counterpart of the original reporter's mpdmp()/mpbin2hex().
package dump

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
	"unicode"

	"code.hybscloud.com/arena"
	"github.com/google/uuid"
)

const (
	lineWidth     = 16
	skipZeroBytes = true
)

// ToFile writes a's full memory dump to a new file at path, prefixed with a
// correlation ID so multiple dumps collected from the same process can be
// told apart once several accumulate on disk.
func ToFile(path string, a *arena.Allocator) (id uuid.UUID, err error) {
	f, err := os.Create(path)
	if err != nil {
		return uuid.Nil, &arena.Error{Code: arena.CodeSyse, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	id = uuid.New()
	if err := WriteTo(w, id, a); err != nil {
		return id, err
	}
	return id, w.Flush()
}

// WriteTo renders a's full memory dump to w, tagged with id.
func WriteTo(w io.Writer, id uuid.UUID, a *arena.Allocator) error {
	now := time.Now().Format("2006/01/02 15:04:05")
	bar := "=================================================================================="

	if _, err := fmt.Fprintln(w, bar); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Memory pool dump  id=%s  %s\n", id, now); err != nil {
		return err
	}

	for _, s := range a.Stats() {
		blocks, err := a.DumpBlocks(s.Handle)
		if err != nil {
			return err
		}

		sep := "----------------------------------------------------------------------------------"
		if _, err := fmt.Fprintln(w, sep); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Memory pool: %s (ID: %d)\n", s.Label, s.Handle); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, sep); err != nil {
			return err
		}

		for _, b := range blocks {
			if _, err := fmt.Fprintf(w, "Block number: %d size: %d from: 0x%x to 0x%x\n",
				b.Index, b.Used, b.Addr, b.Addr+uintptr(b.Used)-1); err != nil {
				return err
			}
			if err := dumpBlock(w, b.Addr, b.Bytes); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, bar)
	return err
}

// dumpBlock writes one line of lineWidth bytes at a time, skipping runs of
// all-zero lines the same way the original dumper does to keep a freshly
// grown, mostly-empty block's dump readable.
func dumpBlock(w io.Writer, base uintptr, data []byte) error {
	skipping := false
	for off := 0; off < len(data); off += lineWidth {
		end := min(off+lineWidth, len(data))
		line := data[off:end]

		if skipZeroBytes && isZero(line) && off > 0 && end < len(data) {
			if !skipping {
				if _, err := fmt.Fprintln(w, "(skipped zero bytes...)"); err != nil {
					return err
				}
				skipping = true
			}
			continue
		}
		skipping = false

		if _, err := fmt.Fprintf(w, "0x%016x: %s\n", base+uintptr(off), hexASCII(line)); err != nil {
			return err
		}
	}
	return nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// hexASCII renders b as a fixed-width hex column followed by an ASCII
// column, printable bytes verbatim and everything else as a dot.
func hexASCII(b []byte) string {
	hex := make([]byte, 0, lineWidth*3)
	ascii := make([]byte, 0, lineWidth)
	for i := 0; i < lineWidth; i++ {
		if i < len(b) {
			hex = fmt.Appendf(hex, "%02x ", b[i])
			if c := b[i]; unicode.IsPrint(rune(c)) && c < utf8RuneSelf {
				ascii = append(ascii, c)
			} else {
				ascii = append(ascii, '.')
			}
		} else {
			hex = append(hex, "   "...)
			ascii = append(ascii, ' ')
		}
	}
	return string(hex) + string(ascii)
}

const utf8RuneSelf = 0x80
