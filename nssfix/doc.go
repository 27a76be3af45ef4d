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

//go:build linux && cgo

// Package nssfix builds the name-service pre-load helper: a small
// shared library injected into the packaged executable's child
// process via LD_PRELOAD, not linked into the bootloader itself.
//
// Its constructor pins every glibc NSS database to a hard-coded
// lookup policy (bypassing /etc/nsswitch.conf) and intercepts the
// exec family so that re-executing the sentinel path
// (/proc/self/exe) or a configured prefix keeps the helper loaded
// across self-re-exec, while any other child loses it.
//
// The symbol interposition and environment-juggling at the center of
// this contract needs to run before and during libc's own exec path
// with no allocator calls on that path, which is native C's territory
// (dlsym(RTLD_NEXT, ...), __attribute__((constructor)), automatic
// storage); the Go side exists only so the library builds as part of
// this module with `go build -buildmode=c-shared`, the same cgo
// wrapper-over-native-entry-point shape the teacher uses in
// ioutils/maxstdio for a CRT call Go cannot make directly. It exports
// nothing to Go callers: its effect is entirely the constructor and
// interposed symbols in the resulting libnssfix.so.
package nssfix

// #cgo CFLAGS: -Wall
// #cgo LDFLAGS: -ldl
// #include "nssfix.h"
import "C"
