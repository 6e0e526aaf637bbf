// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import "os"

// Undiscoverable is used if a process terminated without an exit code, e.g.
// because it was killed by a signal.
const Undiscoverable = 1

// FromState returns the exit code of the terminated process.
//
// If the state carries no exit code, [Undiscoverable] is returned.
func FromState(state *os.ProcessState) int {
	if state == nil {
		return Undiscoverable
	}

	code := state.ExitCode()
	if code < 0 {
		return Undiscoverable
	}

	return code
}

// Resolve maps the exit code of a terminated test run to the result of the
// invocation.
//
// An exit code equal to success results in 0. Any other exit code is
// returned as is, so the actual code is preserved for the caller. Processes
// without exit code result in [Undiscoverable].
func Resolve(state *os.ProcessState, success int) int {
	if state == nil || state.ExitCode() < 0 {
		return Undiscoverable
	}

	code := state.ExitCode()
	if code == success {
		return 0
	}

	return code
}
