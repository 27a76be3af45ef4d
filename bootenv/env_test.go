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

package bootenv_test

import (
	"os"
	"testing"

	"github.com/sabouaram/staticx-go/bootenv"
)

func TestFromEnvironDefaultsToFalse(t *testing.T) {
	os.Unsetenv(bootenv.KeepTempsVar)
	os.Unsetenv(bootenv.IdentifyVar)

	cfg := bootenv.FromEnviron()
	if cfg.KeepTemps || cfg.Identify {
		t.Fatalf("expected both flags false with no env set, got %+v", cfg)
	}
}

func TestFromEnvironHonorsPresenceNotValue(t *testing.T) {
	t.Setenv(bootenv.KeepTempsVar, "")
	t.Setenv(bootenv.IdentifyVar, "0")

	cfg := bootenv.FromEnviron()
	if !cfg.KeepTemps {
		t.Fatalf("expected KeepTemps true when the var is merely set, even to empty")
	}
	if !cfg.Identify {
		t.Fatalf("expected Identify true when the var is set, regardless of its value")
	}
}

func TestSetBundleDirAndProgPathExportVars(t *testing.T) {
	if err := bootenv.SetBundleDir("/tmp/staticx-abc"); err != nil {
		t.Fatalf("SetBundleDir: %v", err)
	}
	if got := os.Getenv(bootenv.BundleDirVar); got != "/tmp/staticx-abc" {
		t.Fatalf("%s = %q, want /tmp/staticx-abc", bootenv.BundleDirVar, got)
	}

	if err := bootenv.SetProgPath("/tmp/staticx-abc/.staticx.prog"); err != nil {
		t.Fatalf("SetProgPath: %v", err)
	}
	if got := os.Getenv(bootenv.ProgPathVar); got != "/tmp/staticx-abc/.staticx.prog" {
		t.Fatalf("%s = %q, want /tmp/staticx-abc/.staticx.prog", bootenv.ProgPathVar, got)
	}
}

func TestNSSDatabasesCoversHostsWithDNSFallback(t *testing.T) {
	for _, db := range bootenv.NSSDatabases {
		if db.Name == "hosts" {
			if db.Service != "files dns" {
				t.Fatalf("hosts service = %q, want %q", db.Service, "files dns")
			}
			return
		}
	}
	t.Fatalf("expected a hosts entry in NSSDatabases")
}
