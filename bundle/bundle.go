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

package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sabouaram/staticx-go/bootenv"
)

// Create makes a fresh, uniquely-named directory under the resolved
// temp root (TMPDIR if set and non-empty, else the platform default —
// exactly os.TempDir's own rule) and returns its absolute path.
func Create() (string, error) {
	root := os.TempDir()
	name := bootenv.BundleDirPrefix + uuid.NewString()
	path := filepath.Join(root, name)

	if err := os.Mkdir(path, 0o700); err != nil {
		return "", fmt.Errorf("bundle: failed to create bundle directory: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// Remove recursively deletes the bundle directory tree, following no
// symlinks (a post-order walk of real directories only), matching
// remove_tree()'s FTW_DEPTH|FTW_PHYS contract in
// original_source/bootloader/util.c. Every error encountered is
// collected and returned, but removal keeps going; callers treat this
// as best-effort and merely log the result.
func Remove(path string) []error {
	var errs []error

	entries, err := os.ReadDir(path)
	if err != nil {
		return []error{fmt.Errorf("bundle: reading %s: %w", path, err)}
	}

	for _, e := range entries {
		child := filepath.Join(path, e.Name())

		info, lerr := os.Lstat(child)
		if lerr != nil {
			errs = append(errs, fmt.Errorf("bundle: lstat %s: %w", child, lerr))
			continue
		}

		if info.IsDir() {
			errs = append(errs, Remove(child)...)
			continue
		}

		if rerr := os.Remove(child); rerr != nil {
			errs = append(errs, fmt.Errorf("bundle: removing %s: %w", child, rerr))
		}
	}

	if err := os.Remove(path); err != nil {
		errs = append(errs, fmt.Errorf("bundle: removing %s: %w", path, err))
	}

	return errs
}
