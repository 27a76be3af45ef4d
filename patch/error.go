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

package patch

import "errors"

var (
	// ErrNoInterpHeader is returned when the target carries no
	// PT_INTERP program header.
	ErrNoInterpHeader = errors.New("patch: no PT_INTERP program header")

	// ErrInterpNotTerminated is returned when the existing interpreter
	// slot has no NUL within its filesz, so its true capacity cannot
	// be trusted.
	ErrInterpNotTerminated = errors.New("patch: interpreter slot is not NUL-terminated within filesz")

	// ErrInterpTooLong is returned when the replacement interpreter
	// path (plus its terminator) would exceed the slot's filesz.
	ErrInterpTooLong = errors.New("patch: replacement interpreter path exceeds slot capacity")

	// ErrNoRunPath is returned when neither DT_RUNPATH nor DT_RPATH is
	// present in the dynamic table.
	ErrNoRunPath = errors.New("patch: no DT_RUNPATH or DT_RPATH entry")

	// ErrRunPathTooLong is returned when the replacement search path
	// would exceed the existing string's length; the string table is
	// never expanded.
	ErrRunPathTooLong = errors.New("patch: replacement library search path exceeds existing capacity")
)
