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

// Package elfimage walks an in-memory ELF image by hand: header
// validation, section-table and program-header-table lookups, and
// dynamic-table scanning for the runtime library search path.
//
// It deliberately does not use debug/elf.NewFile. The binary patcher
// (package patch) needs raw file offsets into a writable mapping so it
// can overwrite fixed-capacity string slots without touching anything
// else in the file; debug/elf's higher-level Section/Prog types do not
// expose that. Only debug/elf's named integer constants are borrowed
// here. Grounded on original_source/bootloader/elfutil.c.
//
// Only little-endian images are supported. Both ELFCLASS32 and
// ELFCLASS64 layouts are accepted; the class is read from e_ident when
// the image is parsed, not fixed at build time. Big-endian images are
// rejected.
package elfimage
