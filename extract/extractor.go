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

package extract

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sabouaram/staticx-go/tracelog"
	"golang.org/x/sys/unix"
)

const dirPerm = 0o755

// Extract reads every entry from r and recreates it under destDir.
// r is consumed strictly forward; Extract never seeks it. A short read
// or parse error aborts extraction immediately.
func Extract(r io.Reader, destDir string) error {
	log := tracelog.L()
	tr := tar.NewReader(r)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("extract: reading next tar header: %w", err)
		}

		target := filepath.Join(destDir, hdr.Name)
		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return wrapf(target, err, "creating parent directories")
		}

		log.Trace("extracting entry", "name", hdr.Name, "type", hdr.Typeflag, "size", hdr.Size)

		mode := os.FileMode(hdr.Mode & 0o7777)

		switch hdr.Typeflag {
		case tar.TypeReg, tar.TypeRegA:
			if err := extractRegular(tr, target, mode, hdr.Size); err != nil {
				return err
			}

		case tar.TypeDir:
			if err := extractDir(target, mode); err != nil {
				return err
			}

		case tar.TypeSymlink:
			if err := extractSymlink(target, hdr.Linkname); err != nil {
				return err
			}

		case tar.TypeLink:
			if err := extractHardlink(destDir, target, hdr.Linkname); err != nil {
				return err
			}

		case tar.TypeChar, tar.TypeBlock:
			if err := extractDevice(target, mode, hdr.Typeflag, hdr.Devmajor, hdr.Devminor); err != nil {
				return err
			}

		case tar.TypeFifo:
			if err := extractFifo(target, mode); err != nil {
				return err
			}

		default:
			return wrapf(target, ErrUnsupportedType, "typeflag %q", string(hdr.Typeflag))
		}
	}
}

func extractRegular(r io.Reader, target string, mode os.FileMode, size int64) error {
	f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return wrapf(target, err, "creating regular file")
	}

	n, err := io.CopyN(f, r, size)
	closeErr := f.Close()

	if err != nil && err != io.EOF {
		return wrapf(target, err, "short read extracting regular file (%d/%d bytes)", n, size)
	}
	if n != size {
		return wrapf(target, io.ErrUnexpectedEOF, "short read extracting regular file (%d/%d bytes)", n, size)
	}
	if closeErr != nil {
		return wrapf(target, closeErr, "closing regular file")
	}

	// OpenFile's mode is subject to the process umask; chmod again to
	// get the archive's exact permission bits, the way tar_set_file_perms
	// does in original_source/libtar/extract.c.
	if err := os.Chmod(target, mode); err != nil {
		return wrapf(target, err, "chmod regular file")
	}

	return nil
}

func extractDir(target string, mode os.FileMode) error {
	if err := os.Mkdir(target, mode); err != nil && !os.IsExist(err) {
		return wrapf(target, err, "creating directory")
	}
	if err := os.Chmod(target, mode); err != nil {
		return wrapf(target, err, "chmod directory")
	}
	return nil
}

func extractSymlink(target, linkTarget string) error {
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return wrapf(target, err, "removing existing path before symlink")
	}
	if err := os.Symlink(linkTarget, target); err != nil {
		return wrapf(target, err, "creating symlink")
	}
	return nil
}

func extractHardlink(destDir, target, linkName string) error {
	src := filepath.Join(destDir, linkName)
	if err := os.Link(src, target); err != nil {
		return wrapf(target, err, "creating hardlink to %s", src)
	}
	return nil
}

func extractDevice(target string, mode os.FileMode, typeflag byte, major, minor int64) error {
	devType := uint32(unix.S_IFCHR)
	if typeflag == tar.TypeBlock {
		devType = unix.S_IFBLK
	}

	dev := unix.Mkdev(uint32(major), uint32(minor))
	if err := unix.Mknod(target, devType|uint32(mode), int(dev)); err != nil {
		return wrapf(target, err, "creating device node")
	}
	if err := os.Chmod(target, mode); err != nil {
		return wrapf(target, err, "chmod device node")
	}
	return nil
}

func extractFifo(target string, mode os.FileMode) error {
	if err := unix.Mkfifo(target, uint32(mode)); err != nil {
		return wrapf(target, err, "creating fifo")
	}
	if err := os.Chmod(target, mode); err != nil {
		return wrapf(target, err, "chmod fifo")
	}
	return nil
}
