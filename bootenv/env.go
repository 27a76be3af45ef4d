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

package bootenv

import "os"

const (
	// ArchiveSection is the ELF section carrying the embedded archive.
	ArchiveSection = ".staticx.archive"

	// InterpFilename is the bundle-relative name of the extracted
	// dynamic loader.
	InterpFilename = ".staticx.interp"

	// ProgFilename is the bundle-relative name of the symlink pointing
	// at the real, patched user executable.
	ProgFilename = ".staticx.prog"

	// BundleDirPrefix is the mkdtemp-style template prefix for the
	// bundle directory.
	BundleDirPrefix = "staticx-"
)

const (
	envKeepTemps  = "STATICX_KEEP_TEMPS"
	envIdentify   = "STATICX_BOOTLOADER_IDENTIFY"
	envBundleDir  = "STATICX_BUNDLE_DIR"
	envProgPath   = "STATICX_PROG_PATH"
	envReinjectPx = "NSSFIX_REINJECT_PATH_PREFIX"
	envPreload    = "LD_PRELOAD"
)

// Config holds the boolean switches the bootloader reads at startup,
// collected once, the way config/interface.go in the teacher collects
// its own narrow os.Getenv reads into typed options. TMPDIR is
// resolved by package bundle (via os.TempDir) and
// STATICX_BOOTLOADER_DEBUG by package tracelog, not here.
type Config struct {
	KeepTemps bool
	Identify  bool
}

// FromEnviron reads the bootloader's own environment-variable surface.
// It intentionally does not read NSSFIX_REINJECT_PATH_PREFIX or
// LD_PRELOAD: those belong to the child process and the nssfix helper
// running inside it, not to the bootloader itself.
func FromEnviron() Config {
	_, keep := os.LookupEnv(envKeepTemps)
	_, ident := os.LookupEnv(envIdentify)
	return Config{KeepTemps: keep, Identify: ident}
}

// SetBundleDir exports STATICX_BUNDLE_DIR for the child process.
func SetBundleDir(path string) error {
	return os.Setenv(envBundleDir, path)
}

// SetProgPath exports STATICX_PROG_PATH for the child process.
func SetProgPath(path string) error {
	return os.Setenv(envProgPath, path)
}

// KeepTempsVar and friends are exposed for callers (e.g. tests) that
// need the raw variable name rather than the parsed Config.
const (
	KeepTempsVar  = envKeepTemps
	IdentifyVar   = envIdentify
	BundleDirVar  = envBundleDir
	ProgPathVar   = envProgPath
	ReinjectPxVar = envReinjectPx
	PreloadVar    = envPreload
)

// NSSDatabases is the fixed set of name-service databases the nssfix
// helper pins, in the exact order original_source/libnssfix/nssfix.c
// configures them.
var NSSDatabases = []struct {
	Name    string
	Service string
}{
	{"aliases", "files"},
	{"ethers", "files"},
	{"group", "files"},
	{"gshadow", "files"},
	{"hosts", "files dns"},
	{"initgroups", "files"},
	{"netgroup", "files"},
	{"networks", "files"},
	{"passwd", "files"},
	{"protocols", "files"},
	{"publickey", "files"},
	{"rpc", "files"},
	{"services", "files"},
	{"shadow", "files"},
}
