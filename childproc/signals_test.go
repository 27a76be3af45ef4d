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

package childproc

import (
	"syscall"
	"testing"
)

func TestForwardedSignalsExcludeUnblockable(t *testing.T) {
	for _, s := range forwardedSignals {
		if s == syscall.SIGKILL || s == syscall.SIGSTOP {
			t.Fatalf("forwardedSignals must never contain %s", s)
		}
	}
}

func TestForwardedSignalsHasNoDuplicates(t *testing.T) {
	seen := make(map[syscall.Signal]bool, len(forwardedSignals))
	for _, s := range forwardedSignals {
		if seen[s] {
			t.Fatalf("duplicate signal %s in forwardedSignals", s)
		}
		seen[s] = true
	}
}

func TestAsOSSignalsPreservesOrder(t *testing.T) {
	out := asOSSignals(forwardedSignals)
	if len(out) != len(forwardedSignals) {
		t.Fatalf("expected %d signals, got %d", len(forwardedSignals), len(out))
	}
	for i, s := range forwardedSignals {
		if out[i] != s {
			t.Fatalf("asOSSignals[%d] = %v, want %v", i, out[i], s)
		}
	}
}
