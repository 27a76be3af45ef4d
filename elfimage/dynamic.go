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

// RunPathTag locates the DT_RUNPATH (preferred) or DT_RPATH (legacy
// fallback) entry within the .dynamic section and resolves it against
// .dynstr, stopping at DT_NULL. It returns the byte offset (within the
// mapped image) of the NUL-terminated search-path string and the
// existing string's length, which is this slot's replacement-capacity
// ceiling per spec.
func (img *Image) RunPathTag() (offset uint64, length int, err error) {
	dynRange, ok, err := img.Section(".dynamic")
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, ErrNotFound
	}

	strRange, ok, err := img.Section(".dynstr")
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, ErrNotFound
	}

	entSize := img.dynEntSize()
	count := dynRange.Size / entSize

	var runpathVal, rpathVal uint64
	var haveRunpath, haveRpath bool

	d := img.data

	for i := uint64(0); i < count; i++ {
		base := dynRange.Offset + i*entSize

		var tag int64
		var val uint64

		if img.is64() {
			tag = int64(binary.LittleEndian.Uint64(d[base : base+8]))
			val = binary.LittleEndian.Uint64(d[base+8 : base+16])
		} else {
			tag = int64(int32(binary.LittleEndian.Uint32(d[base : base+4])))
			val = uint64(binary.LittleEndian.Uint32(d[base+4 : base+8]))
		}

		switch elf.DynTag(tag) {
		case elf.DT_NULL:
			i = count // terminate loop
		case elf.DT_RUNPATH:
			runpathVal, haveRunpath = val, true
		case elf.DT_RPATH:
			rpathVal, haveRpath = val, true
		}

		if elf.DynTag(tag) == elf.DT_NULL {
			break
		}
	}

	var strOff uint64
	switch {
	case haveRunpath:
		strOff = runpathVal
	case haveRpath:
		strOff = rpathVal
	default:
		return 0, 0, ErrNotFound
	}

	if strOff >= strRange.Size {
		return 0, 0, ErrNotFound
	}

	abs := strRange.Offset + strOff
	s := cstr(img.data, abs)
	return abs, len(s), nil
}
