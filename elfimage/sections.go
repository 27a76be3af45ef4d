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

import (
	"bytes"
	"encoding/binary"
)

// sectionAt reads one section-header-table entry's (name-offset,
// file-offset, size) without allocating a struct for the whole table.
func (img *Image) sectionAt(i uint64) (nameOff uint32, fileOff, size uint64) {
	base := img.shoff + i*img.shentsize
	d := img.data

	if img.is64() {
		nameOff = binary.LittleEndian.Uint32(d[base : base+4])
		fileOff = binary.LittleEndian.Uint64(d[base+24 : base+32])
		size = binary.LittleEndian.Uint64(d[base+32 : base+40])
	} else {
		nameOff = binary.LittleEndian.Uint32(d[base : base+4])
		fileOff = uint64(binary.LittleEndian.Uint32(d[base+16 : base+20]))
		size = uint64(binary.LittleEndian.Uint32(d[base+20 : base+24]))
	}
	return
}

// cstr reads a NUL-terminated string starting at byte offset off.
func cstr(data []byte, off uint64) string {
	if off >= uint64(len(data)) {
		return ""
	}
	rest := data[off:]
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		return string(rest[:i])
	}
	return string(rest)
}

// Section resolves a section by name against .shstrtab, returning its
// file byte range. Mirrors elf_get_section_by_name() in
// original_source/bootloader/elfutil.c.
func (img *Image) Section(name string) (Range, bool, error) {
	if img.shentsize != img.shdrSize() {
		return Range{}, false, ErrEntSizeMismatch
	}

	if img.shstrndx >= img.shnum {
		return Range{}, false, ErrNotFound
	}

	_, strtabOff, _ := img.sectionAt(img.shstrndx)

	for i := uint64(0); i < img.shnum; i++ {
		nameOff, fileOff, size := img.sectionAt(i)
		shName := cstr(img.data, strtabOff+uint64(nameOff))
		if shName == name {
			return Range{Offset: fileOff, Size: size}, true, nil
		}
	}

	return Range{}, false, nil
}
