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

import (
	"bytes"
	"debug/elf"
	"fmt"

	"github.com/sabouaram/staticx-go/elfimage"
	"github.com/sabouaram/staticx-go/selfimage"
	"github.com/sabouaram/staticx-go/tracelog"
)

// Patch opens path read/write, rewrites its PT_INTERP slot to interp
// and its DT_RUNPATH/DT_RPATH string to rpath, and flushes by
// unmapping. Both writes happen in place; the file's size and layout
// never change.
func Patch(path string, interp, rpath string) error {
	m, err := selfimage.Open(path, true)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	defer m.Close()

	data := m.Bytes()

	img, err := elfimage.Parse(data)
	if err != nil {
		return fmt.Errorf("patch: parsing %s: %w", path, err)
	}

	if err := patchInterp(img, data, interp); err != nil {
		return err
	}

	if err := patchRunPath(img, data, rpath); err != nil {
		return err
	}

	return m.Close()
}

func patchInterp(img *elfimage.Image, data []byte, interp string) error {
	ph, ok, err := img.ProgramHeader(elf.PT_INTERP)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	if !ok {
		return ErrNoInterpHeader
	}

	slot := data[ph.Offset : ph.Offset+ph.Filesz]
	if bytes.IndexByte(slot, 0) < 0 {
		return ErrInterpNotTerminated
	}

	if uint64(len(interp))+1 > ph.Filesz {
		return ErrInterpTooLong
	}

	tracelog.L().Trace("patching interpreter", "old", cstr(slot), "new", interp)

	n := copy(slot, interp)
	for i := n; i < len(slot); i++ {
		slot[i] = 0
	}

	return nil
}

func patchRunPath(img *elfimage.Image, data []byte, rpath string) error {
	offset, length, err := img.RunPathTag()
	if err != nil {
		if err == elfimage.ErrNotFound {
			return ErrNoRunPath
		}
		return fmt.Errorf("patch: %w", err)
	}

	if len(rpath) > length {
		return ErrRunPathTooLong
	}

	slot := data[offset : offset+uint64(length)]

	tracelog.L().Trace("patching runtime search path", "old", cstr(slot), "new", rpath)

	n := copy(slot, rpath)
	if n < len(slot) {
		slot[n] = 0
	}

	return nil
}

func cstr(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
