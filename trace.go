// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

import (
	"fmt"
	"io"
	"os"
)

// traceFunc writes one formatted, newline-terminated line to w. Trace writes
// through it; the report and dump packages write directly to their own
// io.Writer and do not go through it.
type traceFunc func(w io.Writer, format string, args ...any) error

// defaultTraceFunc writes to w (or stdout if w is nil) using fmt, appending
// a trailing newline the same way the original trace function did.
func defaultTraceFunc(w io.Writer, format string, args ...any) error {
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// InstallTraceSink replaces the trace function that Trace writes through.
// The report and dump packages do not use it. Passing nil restores the
// default stdout-based sink.
func (a *Allocator) InstallTraceSink(fn func(w io.Writer, format string, args ...any) error) {
	if fn == nil {
		fn = defaultTraceFunc
	}
	a.trace = fn
}

// Trace writes one line through the installed trace sink, reporting
// CodeDisp if the sink fails.
func (a *Allocator) Trace(w io.Writer, format string, args ...any) error {
	if err := a.trace(w, format, args...); err != nil {
		e := wrapError(CodeDisp, err)
		a.setLastErr(e)
		return e
	}
	return nil
}

// InstallTraceSink replaces the trace function on the default Allocator.
func InstallTraceSink(fn func(w io.Writer, format string, args ...any) error) {
	defaultAllocator.InstallTraceSink(fn)
}

// Trace writes one line through the default Allocator's trace sink.
func Trace(w io.Writer, format string, args ...any) error {
	return defaultAllocator.Trace(w, format, args...)
}
