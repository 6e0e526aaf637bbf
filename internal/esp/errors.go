// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package esp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLocal is returned if a destination path would escape the ESP
	// root.
	ErrNotLocal = errors.New("path is not local")

	// ErrNotRegularFile is returned if a source is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrSameFile is returned if source and destination are the same file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// IOError wraps any error occurring during assembly of the ESP.
type IOError struct {
	Op          string
	Source      string
	Destination string
	Err         error
}

// Error implements the [error] interface.
func (e *IOError) Error() string {
	switch {
	case e.Source != "" && e.Destination != "":
		return fmt.Sprintf("%s %s to %s: %v",
			e.Op, e.Source, e.Destination, e.Err)
	case e.Source != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Destination, e.Err)
	}
}

// Is implements the [errors.Is] interface.
func (*IOError) Is(other error) bool {
	_, ok := other.(*IOError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *IOError) Unwrap() error {
	return e.Err
}
