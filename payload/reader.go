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

package payload

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// NewReader wraps the archive byte range in a single-use, forward-only
// io.Reader: decompressing XZ if the magic matches, or a plain
// bytes.Reader otherwise. Both arms satisfy io.Reader alone — the
// extractor never seeks, per spec.
//
// The xz.ReaderConfig.DictCap ceiling mirrors XZ_DICT_MAX from
// original_source/bootloader/extract.c (8 MiB); streams requiring a
// larger dictionary are rejected rather than silently allowed to
// allocate without bound.
func NewReader(data []byte) (io.Reader, error) {
	if IsCompressed(data) {
		cfg := xz.ReaderConfig{DictCap: xzDictCapMax}
		zr, err := cfg.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("payload: xz stream: %w", err)
		}
		return zr, nil
	}

	return bytes.NewReader(data), nil
}
