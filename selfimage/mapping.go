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

package selfimage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SelfExePath is the only path ever used to read the bootloader's own
// on-disk image.
const SelfExePath = "/proc/self/exe"

// Mapped is the (fd, size, base) triple of a memory-mapped file.
type Mapped struct {
	file *os.File
	data []byte
}

// Open mmaps path for the whole file length. writable selects a
// read/write MAP_SHARED mapping (so in-place writes reach disk on
// Close) versus a read-only one.
func Open(path string, writable bool) (*Mapped, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	size := st.Size()
	if size == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%s is empty", path)
	}

	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}

	return &Mapped{file: f, data: data}, nil
}

// Bytes returns the mapped region. It remains valid until Close.
func (m *Mapped) Bytes() []byte {
	return m.data
}

// Close unmaps the region and closes the descriptor. Both are
// attempted even if one fails, mirroring unmap_file's teardown order
// (munmap, then close) in original_source/bootloader/mmap.c.
func (m *Mapped) Close() error {
	var errUnmap, errClose error

	if m.data != nil {
		errUnmap = unix.Munmap(m.data)
		m.data = nil
	}

	if m.file != nil {
		errClose = m.file.Close()
		m.file = nil
	}

	if errUnmap != nil {
		return errUnmap
	}
	return errClose
}
