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

package elfimage

import "errors"

var (
	// ErrTooShort means the buffer is too small to even hold an ELF header.
	ErrTooShort = errors.New("elfimage: buffer too short for an ELF header")

	// ErrBadMagic means the four-byte ELF magic did not match.
	ErrBadMagic = errors.New("elfimage: invalid ELF magic")

	// ErrUnsupportedClass means neither ELFCLASS32 nor ELFCLASS64.
	ErrUnsupportedClass = errors.New("elfimage: unsupported ELF class")

	// ErrUnsupportedEncoding means the image is not little-endian.
	ErrUnsupportedEncoding = errors.New("elfimage: unsupported byte order (only little-endian is supported)")

	// ErrEntSizeMismatch means the header's declared table entry size
	// disagrees with this package's compiled-in struct size.
	ErrEntSizeMismatch = errors.New("elfimage: header entry size disagrees with expected struct size")

	// ErrNotFound is returned by lookups that found nothing.
	ErrNotFound = errors.New("elfimage: not found")
)
