/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package staticxerr

import (
	"fmt"
)

// CodeError mirrors the bootloader's process exit code.
type CodeError int

const (
	// CodeInternal covers every fatal condition raised before the
	// child is started: malformed ELF, missing archive section, short
	// reads, slot overflow, mmap/extraction/patch failures.
	CodeInternal CodeError = 2

	// CodeChildExec is used when the patched user program cannot be
	// started. syscall.ForkExec reports fork and exec failures to the
	// parent as one error, so both map to this code.
	CodeChildExec CodeError = 3
)

// Error is the bootloader's single error type. It always carries a
// CodeError and a short description; cause may be nil.
type Error struct {
	code CodeError
	msg  string
	prog string
	err  error
}

// New builds a bootloader error with no underlying cause.
func New(code CodeError, prog, format string, args ...interface{}) *Error {
	return &Error{code: code, prog: prog, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a bootloader error around an underlying OS/library error,
// the way original_source/bootloader/error.c's error(status, errnum, ...)
// appends strerror(errnum) to the formatted message.
func Wrap(code CodeError, prog string, cause error, format string, args ...interface{}) *Error {
	return &Error{code: code, prog: prog, msg: fmt.Sprintf(format, args...), err: cause}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s", e.prog, e.msg, e.err.Error())
	}
	return fmt.Sprintf("%s: %s", e.prog, e.msg)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the process exit code this error maps to.
func (e *Error) Code() int {
	return int(e.code)
}
