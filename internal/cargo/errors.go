// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cargo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteMetadata is returned if cargo metadata output lacks required
// fields.
var ErrIncompleteMetadata = errors.New("incomplete metadata")

// CommandError wraps any error occurring while querying cargo.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("cargo metadata `%s`: %v", e.Command, e.Err)

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
