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

// Run's signal-death branch re-raises the received signal against the
// calling process and never returns by design, so it cannot be driven
// in-process without killing the test binary itself. This suite
// exercises the exit-code matrix only; signal forwarding itself is
// covered indirectly by TestForwardedSignalsExcludeUnblockable in
// signals_test.go.
package childproc_test

import (
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/staticx-go/childproc"
)

func TestChildproc(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "childproc suite")
}

var _ = Describe("TC-CP-001: child process exit-code matrix", func() {
	Context("TC-CP-002: a program that exits zero", func() {
		It("TC-CP-003: reports exit code 0", func() {
			code, err := childproc.Run(childproc.Spec{
				ProgPath: "/bin/true",
				Argv:     []string{"true"},
				Env:      []string{},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(0))
		})
	})

	Context("TC-CP-004: a program that exits non-zero", func() {
		It("TC-CP-005: reports the exact exit code", func() {
			code, err := childproc.Run(childproc.Spec{
				ProgPath: "/bin/sh",
				Argv:     []string{"sh", "-c", "exit 17"},
				Env:      []string{},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(17))
		})
	})

	Context("TC-CP-006: a program path that cannot be exec'd", func() {
		It("TC-CP-007: wraps ErrExecFailed", func() {
			_, err := childproc.Run(childproc.Spec{
				ProgPath: "/nonexistent/path/to/nothing",
				Argv:     []string{"nothing"},
				Env:      []string{},
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, childproc.ErrExecFailed)).To(BeTrue())
		})
	})
})
