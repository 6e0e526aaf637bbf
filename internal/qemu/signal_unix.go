// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package qemu

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// terminationSignal returns the name of the signal the process was
// terminated by, if any.
func terminationSignal(state *os.ProcessState) (string, bool) {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return "", false
	}

	name := unix.SignalName(status.Signal())
	if name == "" {
		name = status.Signal().String()
	}

	return name, true
}
