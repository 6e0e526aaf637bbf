// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned if a test run did not terminate in time.
var ErrTimeout = errors.New("timed out")

// SpawnError is returned if the QEMU process could not be started.
type SpawnError struct {
	Command string
	Err     error
}

// Error implements the [error] interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch `%s`: %v", e.Command, e.Err)
}

// Is implements the [errors.Is] interface.
func (*SpawnError) Is(other error) bool {
	_, ok := other.(*SpawnError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *SpawnError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned if QEMU did not terminate within the timeout of a
// test run. The process has been killed and reaped.
type TimeoutError struct {
	Timeout time.Duration
}

// Error implements the [error] interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("qemu %v after %s", ErrTimeout, e.Timeout)
}

// Is implements the [errors.Is] interface.
func (*TimeoutError) Is(other error) bool {
	_, ok := other.(*TimeoutError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (*TimeoutError) Unwrap() error {
	return ErrTimeout
}

// WaitError is returned if waiting for or killing the QEMU process failed.
type WaitError struct {
	Op  string
	Err error
}

// Error implements the [error] interface.
func (e *WaitError) Error() string {
	return fmt.Sprintf("%s qemu: %v", e.Op, e.Err)
}

// Is implements the [errors.Is] interface.
func (*WaitError) Is(other error) bool {
	_, ok := other.(*WaitError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *WaitError) Unwrap() error {
	return e.Err
}
