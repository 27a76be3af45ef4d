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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sabouaram/staticx-go/tracelog"
	"golang.org/x/sys/unix"
)

// ErrExecFailed wraps a fork/exec failure from syscall.ForkExec. The
// underlying call conflates fork and exec into one syscall-level
// operation, so this is the sole signal callers have to map the
// failure onto the child-exec exit code (3) rather than the generic
// internal one (2).
var ErrExecFailed = errors.New("childproc: fork/exec failed")

// Spec names the patched program to run in place of the bootloader.
type Spec struct {
	// ProgPath is the patched, on-disk executable to exec.
	ProgPath string
	// Argv is the full argument vector, including argv[0].
	Argv []string
	// Env is the child's environment.
	Env []string
}

// Run execs Spec.ProgPath, forwards every signal the bootloader
// receives to the child during the wait window, and mirrors its
// fate: a normal exit returns (code, nil); a signal death re-raises
// the same signal against the calling process and Run does not
// return. A pre-fork or exec failure is reported as an error.
func Run(spec Spec) (int, error) {
	pid, err := syscall.ForkExec(spec.ProgPath, spec.Argv, &syscall.ProcAttr{
		Env:   spec.Env,
		Files: []uintptr{uintptr(syscall.Stdin), uintptr(syscall.Stdout), uintptr(syscall.Stderr)},
	})
	if err != nil {
		return 0, fmt.Errorf("childproc: exec %s: %w: %w", spec.ProgPath, ErrExecFailed, err)
	}

	tracelog.L().Trace("child started", "pid", pid)

	sigCh := make(chan os.Signal, len(forwardedSignals))
	signal.Notify(sigCh, asOSSignals(forwardedSignals)...)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)

	go forwardLoop(pid, sigCh, done)

	var ws unix.WaitStatus
	var rusage unix.Rusage
	for {
		_, err := unix.Wait4(pid, &ws, 0, &rusage)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("childproc: wait4 pid %d: %w", pid, err)
		}
		break
	}

	signal.Stop(sigCh)
	signal.Reset(asOSSignals(forwardedSignals)...)

	switch {
	case ws.Exited():
		code := ws.ExitStatus()
		tracelog.L().Trace("child exited", "pid", pid, "code", code)
		return code, nil

	case ws.Signaled():
		sig := ws.Signal()
		tracelog.L().Trace("child signal-killed", "pid", pid, "signal", sig)
		signal.Reset(sig)
		if err := unix.Kill(os.Getpid(), sig); err != nil {
			return 0, fmt.Errorf("childproc: re-raising %s: %w", sig, err)
		}
		select {} // unreachable: re-raising an unblocked terminating signal does not return

	default:
		return 0, fmt.Errorf("childproc: child %d left an unrecognized wait status %v", pid, ws)
	}
}

func forwardLoop(pid int, sigCh <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}
			s, ok := sig.(syscall.Signal)
			if !ok {
				continue
			}
			tracelog.L().Trace("forwarding signal to child", "pid", pid, "signal", s)
			_ = unix.Kill(pid, s)
		}
	}
}

func asOSSignals(sigs []syscall.Signal) []os.Signal {
	out := make([]os.Signal, len(sigs))
	for i, s := range sigs {
		out[i] = s
	}
	return out
}
