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

// e_ident byte offsets, per the ELF spec.
const (
	eiMag0    = 0
	eiMag1    = 1
	eiMag2    = 2
	eiMag3    = 3
	eiClass   = 4
	eiData    = 5
	identSize = 16
)

// ehdr64Size and ehdr32Size are sizeof(Elf64_Ehdr)/sizeof(Elf32_Ehdr).
const (
	ehdr64Size = 64
	ehdr32Size = 52
)

// Parse validates the ELF magic and captures the section- and
// program-header table locations. It mirrors elf_is_valid() from
// original_source/bootloader/elfutil.c plus the e_shoff/e_phoff
// bookkeeping extract.c and the patcher need.
func Parse(data []byte) (*Image, error) {
	if len(data) < identSize {
		return nil, ErrTooShort
	}

	if data[eiMag0] != '\x7f' || data[eiMag1] != 'E' || data[eiMag2] != 'L' || data[eiMag3] != 'F' {
		return nil, ErrBadMagic
	}

	class := elf.Class(data[eiClass])
	if class != elf.ELFCLASS32 && class != elf.ELFCLASS64 {
		return nil, ErrUnsupportedClass
	}

	if elf.Data(data[eiData]) != elf.ELFDATA2LSB {
		return nil, ErrUnsupportedEncoding
	}

	img := &Image{data: data, class: class}

	if class == elf.ELFCLASS64 {
		if len(data) < ehdr64Size {
			return nil, ErrTooShort
		}
		img.phoff = binary.LittleEndian.Uint64(data[32:40])
		img.shoff = binary.LittleEndian.Uint64(data[40:48])
		img.phentsize = uint64(binary.LittleEndian.Uint16(data[54:56]))
		img.phnum = uint64(binary.LittleEndian.Uint16(data[56:58]))
		img.shentsize = uint64(binary.LittleEndian.Uint16(data[58:60]))
		img.shnum = uint64(binary.LittleEndian.Uint16(data[60:62]))
		img.shstrndx = uint64(binary.LittleEndian.Uint16(data[62:64]))
	} else {
		if len(data) < ehdr32Size {
			return nil, ErrTooShort
		}
		img.phoff = uint64(binary.LittleEndian.Uint32(data[28:32]))
		img.shoff = uint64(binary.LittleEndian.Uint32(data[32:36]))
		img.phentsize = uint64(binary.LittleEndian.Uint16(data[42:44]))
		img.phnum = uint64(binary.LittleEndian.Uint16(data[44:46]))
		img.shentsize = uint64(binary.LittleEndian.Uint16(data[46:48]))
		img.shnum = uint64(binary.LittleEndian.Uint16(data[48:50]))
		img.shstrndx = uint64(binary.LittleEndian.Uint16(data[50:52]))
	}

	return img, nil
}

// shdrSize returns sizeof(Elf{32,64}_Shdr), the struct size this
// package expects; used to sanity-check e_shentsize.
func (img *Image) shdrSize() uint64 {
	if img.is64() {
		return 64
	}
	return 40
}

// phdrSize returns sizeof(Elf{32,64}_Phdr).
func (img *Image) phdrSize() uint64 {
	if img.is64() {
		return 56
	}
	return 32
}
