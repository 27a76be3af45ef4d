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

package patch_test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/sabouaram/staticx-go/patch"
)

// buildImage lays out the same minimal ELF64 shape used by the
// elfimage tests: one PT_INTERP header with a fixed-capacity slot,
// and a .dynstr entry referenced by a DT_RUNPATH tag.
func buildImage(t *testing.T, interpCap int, interpValue string, rpathValue string) []byte {
	t.Helper()

	const (
		interpOff = 200
		dynstrOff = 300
		dynOff    = 400
		shstrOff  = 500
		phdrOff   = 64
		shdrOff   = 600
	)

	buf := make([]byte, 1024)
	buf[0], buf[1], buf[2], buf[3] = 0x7f, 'E', 'L', 'F'
	buf[4] = byte(elf.ELFCLASS64)
	buf[5] = byte(elf.ELFDATA2LSB)

	binary.LittleEndian.PutUint64(buf[32:40], phdrOff)
	binary.LittleEndian.PutUint64(buf[40:48], shdrOff)
	binary.LittleEndian.PutUint16(buf[54:56], 56)
	binary.LittleEndian.PutUint16(buf[56:58], 1)
	binary.LittleEndian.PutUint16(buf[58:60], 64)
	binary.LittleEndian.PutUint16(buf[60:62], 4)
	binary.LittleEndian.PutUint16(buf[62:64], 1)

	copy(buf[interpOff:], interpValue)

	dynstr := append([]byte{0}, append([]byte(rpathValue), 0)...)
	copy(buf[dynstrOff:], dynstr)

	binary.LittleEndian.PutUint64(buf[dynOff:dynOff+8], uint64(elf.DT_RUNPATH))
	binary.LittleEndian.PutUint64(buf[dynOff+8:dynOff+16], 1)
	binary.LittleEndian.PutUint64(buf[dynOff+16:dynOff+24], uint64(elf.DT_NULL))

	shstr := []byte("\x00.shstrtab\x00.dynamic\x00.dynstr\x00")
	copy(buf[shstrOff:], shstr)

	putShdr := func(at int, nameOff uint32, offset, size uint64) {
		binary.LittleEndian.PutUint32(buf[at:at+4], nameOff)
		binary.LittleEndian.PutUint64(buf[at+24:at+32], offset)
		binary.LittleEndian.PutUint64(buf[at+32:at+40], size)
	}
	putShdr(shdrOff, 0, 0, 0)
	putShdr(shdrOff+64, 1, shstrOff, uint64(len(shstr)))
	putShdr(shdrOff+128, 11, dynOff, 32)
	putShdr(shdrOff+192, 20, dynstrOff, uint64(len(dynstr)))

	binary.LittleEndian.PutUint32(buf[phdrOff:phdrOff+4], uint32(elf.PT_INTERP))
	binary.LittleEndian.PutUint64(buf[phdrOff+8:phdrOff+16], interpOff)
	binary.LittleEndian.PutUint64(buf[phdrOff+32:phdrOff+40], uint64(interpCap))

	return buf
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.elf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing temp image: %v", err)
	}
	return path
}

func TestPatchRewritesInterpAndRunPath(t *testing.T) {
	data := buildImage(t, 32, "/lib64/ld-linux-x86-64.so.2", "/orig/rpath")
	path := writeTemp(t, data)

	if err := patch.Patch(path, "/short/ld.so", "/bundle/dir"); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading patched image: %v", err)
	}

	interpSlot := out[200:232]
	if got := string(bytes.TrimRight(interpSlot, "\x00")); got != "/short/ld.so" {
		t.Fatalf("interp slot = %q, want %q", got, "/short/ld.so")
	}
	if interpSlot[len("/short/ld.so")] != 0 {
		t.Fatalf("interp slot not NUL terminated after write")
	}

	rpathSlot := out[301:312]
	if got := string(bytes.TrimRight(rpathSlot, "\x00")); got != "/bundle/dir" {
		t.Fatalf("rpath slot = %q, want %q", got, "/bundle/dir")
	}
}

func TestPatchRunPathLeavesTrailingBytesUntouched(t *testing.T) {
	data := buildImage(t, 32, "/lib64/ld-linux-x86-64.so.2", "/orig/rpath")
	path := writeTemp(t, data)

	if err := patch.Patch(path, "/ld.so", "/new"); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading patched image: %v", err)
	}

	// The rpath slot runs from offset 301, 11 bytes long (the original
	// "/orig/rpath"). Only the terminator after the new, shorter value
	// may change; everything past it must still read the tail of the
	// original string, not NULs.
	rpathSlot := out[301:312]
	if got := string(rpathSlot[:4]); got != "/new" {
		t.Fatalf("rpath slot head = %q, want %q", got, "/new")
	}
	if rpathSlot[4] != 0 {
		t.Fatalf("expected a NUL terminator right after the new value")
	}
	if got := string(rpathSlot[5:]); got != "/rpath" {
		t.Fatalf("trailing bytes = %q, want untouched remainder %q", got, "/rpath")
	}
}

func TestPatchRejectsInterpTooLong(t *testing.T) {
	data := buildImage(t, 8, "/ld.so", "/orig/rpath")
	path := writeTemp(t, data)

	err := patch.Patch(path, "/a/very/long/interpreter/path/that/overflows", "/bundle")
	if err != patch.ErrInterpTooLong {
		t.Fatalf("expected ErrInterpTooLong, got %v", err)
	}
}

func TestPatchRejectsRunPathTooLong(t *testing.T) {
	data := buildImage(t, 32, "/lib64/ld-linux-x86-64.so.2", "/x")
	path := writeTemp(t, data)

	err := patch.Patch(path, "/ld.so", "/a/much/longer/replacement/rpath")
	if err != patch.ErrRunPathTooLong {
		t.Fatalf("expected ErrRunPathTooLong, got %v", err)
	}
}
