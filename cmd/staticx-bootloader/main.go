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

// Command staticx-bootloader is the runtime embedded in every packaged
// executable: it locates the archive section inside its own on-disk
// image, extracts it into a private bundle directory, patches the
// user program's interpreter and runtime search path, then runs it as
// a child process and mirrors its exit.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sabouaram/staticx-go/archivesec"
	"github.com/sabouaram/staticx-go/bootenv"
	"github.com/sabouaram/staticx-go/bundle"
	"github.com/sabouaram/staticx-go/childproc"
	"github.com/sabouaram/staticx-go/elfimage"
	"github.com/sabouaram/staticx-go/extract"
	"github.com/sabouaram/staticx-go/patch"
	"github.com/sabouaram/staticx-go/payload"
	"github.com/sabouaram/staticx-go/selfimage"
	"github.com/sabouaram/staticx-go/staticxerr"
	"github.com/sabouaram/staticx-go/tracelog"
)

const progName = "staticx-bootloader"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := bootenv.FromEnviron()

	if cfg.Identify {
		fmt.Println(progName + " (staticx-go bootloader)")
		return 0
	}

	progPath, err := os.Readlink(selfimage.SelfExePath)
	if err != nil {
		progPath, err = filepath.Abs(os.Args[0])
	}
	if err != nil {
		return fail(staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "resolving own executable path"))
	}

	bundleDir, err := bundle.Create()
	if err != nil {
		return fail(staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "creating bundle directory"))
	}

	exitCode, runErr := runPipeline(progPath, bundleDir)

	if !cfg.KeepTemps {
		for _, rmErr := range bundle.Remove(bundleDir) {
			tracelog.L().Warn("bundle removal error", "err", rmErr)
		}
	} else {
		tracelog.L().Debug("keeping bundle directory", "path", bundleDir)
	}

	if runErr != nil {
		return fail(runErr)
	}
	return exitCode
}

func runPipeline(progPath, bundleDir string) (int, error) {
	self, err := selfimage.Open(selfimage.SelfExePath, false)
	if err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "mapping self image")
	}
	defer self.Close()

	selfImg, err := elfimage.Parse(self.Bytes())
	if err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "parsing self image")
	}

	archRange, err := archivesec.Locate(selfImg)
	if err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "locating archive section")
	}
	tracelog.L().Trace("archive located", "offset", archRange.Offset, "size", archRange.Size)

	archBytes := self.Bytes()[archRange.Offset : archRange.Offset+archRange.Size]

	reader, err := payload.NewReader(archBytes)
	if err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "opening archive payload")
	}

	if err := extract.Extract(reader, bundleDir); err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "extracting archive")
	}

	progSymlink := filepath.Join(bundleDir, bootenv.ProgFilename)
	realProgPath, err := filepath.EvalSymlinks(progSymlink)
	if err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "resolving %s", bootenv.ProgFilename)
	}

	interpPath := filepath.Join(bundleDir, bootenv.InterpFilename)
	if err := patch.Patch(realProgPath, interpPath, bundleDir); err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "patching %s", realProgPath)
	}

	if err := bootenv.SetBundleDir(bundleDir); err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "exporting bundle dir")
	}
	if err := bootenv.SetProgPath(progPath); err != nil {
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "exporting prog path")
	}

	argv := append([]string{progSymlink}, os.Args[1:]...)

	code, err := childproc.Run(childproc.Spec{
		ProgPath: progSymlink,
		Argv:     argv,
		Env:      os.Environ(),
	})
	if err != nil {
		if errors.Is(err, childproc.ErrExecFailed) {
			return 0, staticxerr.Wrap(staticxerr.CodeChildExec, progName, err, "executing %s", progSymlink)
		}
		return 0, staticxerr.Wrap(staticxerr.CodeInternal, progName, err, "running child")
	}

	return code, nil
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, err.Error())
	if se, ok := err.(*staticxerr.Error); ok {
		return se.Code()
	}
	return int(staticxerr.CodeInternal)
}
