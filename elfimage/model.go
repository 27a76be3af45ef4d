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

import "debug/elf"

// Range is an (offset, size) byte range within the mapped image.
type Range struct {
	Offset uint64
	Size   uint64
}

// ProgHeader is the subset of a program-header entry the bootloader
// cares about: where its payload starts in the file, and how big the
// fixed-capacity slot is.
type ProgHeader struct {
	Type   elf.ProgType
	Offset uint64
	Filesz uint64
}

// Image is a parsed view over a mapped ELF file. It never copies the
// underlying bytes; every accessor returns offsets into the slice
// passed to Parse.
type Image struct {
	data  []byte
	class elf.Class

	shoff     uint64
	shentsize uint64
	shnum     uint64
	shstrndx  uint64

	phoff     uint64
	phentsize uint64
	phnum     uint64
}

// is64 reports whether this image uses the 64-bit ELF layout.
func (img *Image) is64() bool {
	return img.class == elf.ELFCLASS64
}

// dynEntSize is the size in bytes of one Elf{32,64}_Dyn entry.
func (img *Image) dynEntSize() uint64 {
	if img.is64() {
		return 16
	}
	return 8
}
