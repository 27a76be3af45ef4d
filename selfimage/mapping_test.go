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

package selfimage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sabouaram/staticx-go/selfimage"
)

func TestOpenReadOnlyMapsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.bin")
	want := []byte("read-only mapped content")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	m, err := selfimage.Open(path, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	if !bytes.Equal(m.Bytes(), want) {
		t.Fatalf("Bytes() = %q, want %q", m.Bytes(), want)
	}
}

func TestOpenWritableFlushesOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rw.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	m, err := selfimage.Open(path, true)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	copy(m.Bytes(), "ABCDE")
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(out) != "ABCDE56789" {
		t.Fatalf("file contents = %q, want %q", out, "ABCDE56789")
	}
}

func TestOpenRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := selfimage.Open(path, false); err == nil {
		t.Fatalf("expected an error opening an empty file")
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")

	if _, err := selfimage.Open(path, false); err == nil {
		t.Fatalf("expected an error opening a missing file")
	}
}
