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

package archivesec

import (
	"errors"
	"fmt"

	"github.com/sabouaram/staticx-go/bootenv"
	"github.com/sabouaram/staticx-go/elfimage"
)

// ErrMissing is returned when the packaged executable carries no
// archive section at all — a fatal, non-recoverable condition.
var ErrMissing = errors.New("archivesec: " + bootenv.ArchiveSection + " section not found")

// Locate returns the byte range of the embedded archive payload within
// the given mapped self-image bytes.
func Locate(img *elfimage.Image) (elfimage.Range, error) {
	rng, ok, err := img.Section(bootenv.ArchiveSection)
	if err != nil {
		return elfimage.Range{}, fmt.Errorf("archivesec: %w", err)
	}
	if !ok {
		return elfimage.Range{}, ErrMissing
	}
	return rng, nil
}
