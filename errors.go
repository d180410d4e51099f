// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arena

// Code identifies a stable allocator error condition.
type Code int

const (
	// CodeSuccess means no error occurred.
	CodeSuccess Code = iota
	// CodeMpid means the pool handle is out of range.
	CodeMpid
	// CodeSzng means a negative size was requested.
	CodeSzng
	// CodeNomm means the host allocator is out of memory.
	// Unreachable under Go's make, kept for API parity.
	CodeNomm
	// CodeExmm means the call would exceed the configured memory limit.
	CodeExmm
	// CodeAllo means the host allocator returned nothing.
	// Unreachable under Go's make, kept for API parity.
	CodeAllo
	// CodeExal means the requested alignment is not a power of two,
	// or is smaller than a pointer.
	CodeExal
	// CodeNoin means the pool is not the default pool and is not initialized.
	CodeNoin
	// CodeExmp means the pool registry is full.
	CodeExmp
	// CodeNopp means there is nothing on the one-slot pool stack to pop.
	CodeNopp
	// CodeDisp means the trace sink reported a display error.
	CodeDisp
	// CodeParm means a required parameter was missing or empty.
	CodeParm
	// CodeThrd means the calling goroutine does not own the target pool.
	CodeThrd
	// CodeSyse means an underlying OS call failed; Error.Err carries the cause.
	CodeSyse
)

var codeText = map[Code]string{
	CodeSuccess: "",
	CodeMpid:    "pool handle out of range",
	CodeSzng:    "negative size",
	CodeNomm:    "out of memory",
	CodeExmm:    "memory limit exceeded",
	CodeAllo:    "error allocating memory",
	CodeExal:    "alignment is not a power of two or is smaller than a pointer",
	CodeNoin:    "pool is not the default and is not initialized: call New first",
	CodeExmp:    "limit of number of pools exceeded",
	CodeNopp:    "nothing to pop, call Push first",
	CodeDisp:    "error displaying a message",
	CodeParm:    "error on parameter passed to the function",
	CodeThrd:    "expected a different goroutine",
	CodeSyse:    "system error",
}

// String returns the stable human-readable message for code.
func (c Code) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return "error code not recognized"
}

// Error wraps a Code with optional underlying cause.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code.String() + ": " + e.Err.Error()
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code Code) *Error {
	return &Error{Code: code}
}

func wrapError(code Code, err error) *Error {
	return &Error{Code: code, Err: err}
}
