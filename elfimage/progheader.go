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
	"debug/elf"
	"encoding/binary"
)

// ProgramHeader walks the program-header table looking for the first
// entry of the given type. Mirrors elf_get_proghdr_by_type() in
// original_source/bootloader/elfutil.c.
func (img *Image) ProgramHeader(pt elf.ProgType) (ProgHeader, bool, error) {
	if img.phentsize != img.phdrSize() {
		return ProgHeader{}, false, ErrEntSizeMismatch
	}

	d := img.data

	for i := uint64(0); i < img.phnum; i++ {
		base := img.phoff + i*img.phentsize

		var typ uint32
		var off, filesz uint64

		if img.is64() {
			typ = binary.LittleEndian.Uint32(d[base : base+4])
			off = binary.LittleEndian.Uint64(d[base+8 : base+16])
			filesz = binary.LittleEndian.Uint64(d[base+32 : base+40])
		} else {
			typ = binary.LittleEndian.Uint32(d[base : base+4])
			off = uint64(binary.LittleEndian.Uint32(d[base+4 : base+8]))
			filesz = uint64(binary.LittleEndian.Uint32(d[base+16 : base+20]))
		}

		if elf.ProgType(typ) == pt {
			return ProgHeader{Type: pt, Offset: off, Filesz: filesz}, true, nil
		}
	}

	return ProgHeader{}, false, nil
}
