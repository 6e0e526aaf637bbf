// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"path/filepath"
)

// Mode is the mode QEMU is run in.
type Mode int

const (
	// ModeRun is for interactive runs. QEMU's exit code is passed through.
	ModeRun Mode = iota

	// ModeTest is for test runs. QEMU's exit code is matched against the
	// success exit code and runs are bound by a timeout.
	ModeTest
)

// testBinaryDir is the directory cargo puts test executables in.
const testBinaryDir = "deps"

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if m == ModeTest {
		return "test"
	}

	return "run"
}

// DetectMode returns the [Mode] for the given boot image path.
//
// Cargo puts test executables into a "deps" directory, e.g.
// "target/x86_64-unknown-uefi/debug/deps/app-0123456789abcdef.efi", while
// normal executables are one level above.
func DetectMode(bootImage string) Mode {
	parent := filepath.Base(filepath.Dir(filepath.Clean(bootImage)))
	if parent == testBinaryDir {
		return ModeTest
	}

	return ModeRun
}
