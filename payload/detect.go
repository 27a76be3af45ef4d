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

// xzMagic is the fixed six-byte prefix identifying the XZ stream
// format. See https://tukaani.org/xz/xz-file-format.txt, and
// is_xz_file() in original_source/bootloader/extract.c.
var xzMagic = [6]byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// xzDictCapMax is the decompressor's dictionary-size ceiling,
// matching XZ_DICT_MAX in original_source/bootloader/extract.c.
const xzDictCapMax = 8 << 20

// IsCompressed reports whether buf begins with the XZ magic.
func IsCompressed(buf []byte) bool {
	if len(buf) < len(xzMagic) {
		return false
	}
	for i, b := range xzMagic {
		if buf[i] != b {
			return false
		}
	}
	return true
}
