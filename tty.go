// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/term"
)

// isTTY reports whether f is a terminal.
func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
