// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeTimeout is returned if the test timeout is negative.
	ErrNegativeTimeout = errors.New("test-timeout must not be negative")

	// ErrOutOfRange is returned if an integer value does not fit into the
	// type of its field.
	ErrOutOfRange = errors.New("value is outside of range")
)

// ParseError is returned if the manifest can not be opened, read or parsed.
type ParseError struct {
	Path string
	Step string
	Err  error
}

// Error implements the [error] interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s manifest: %v", e.Step, e.Err)
	}

	return fmt.Sprintf("%s manifest %s: %v", e.Step, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ParseError) Is(other error) bool {
	_, ok := other.(*ParseError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError is returned if the metadata block exists but is not a table.
type SchemaError struct {
	Value any
}

// Error implements the [error] interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s is invalid: not a table: %v", Namespace, e.Value)
}

// Is implements the [errors.Is] interface.
func (*SchemaError) Is(other error) bool {
	_, ok := other.(*SchemaError)
	return ok
}

// ValidationError is returned if a value has the correct type but is not
// acceptable.
type ValidationError struct {
	Key string
	Err error
}

// Error implements the [error] interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Key, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// TypeError is returned if an element of an array or table value has the
// wrong type.
type TypeError struct {
	Key   string
	Value any
}

// Error implements the [error] interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s has non string element: %v", e.Key, e.Value)
}

// Is implements the [errors.Is] interface.
func (*TypeError) Is(other error) bool {
	_, ok := other.(*TypeError)
	return ok
}

// UnrecognizedKeyError is returned for unknown keys and for known keys with
// values of the wrong type.
type UnrecognizedKeyError struct {
	Key   string
	Value any
}

// Error implements the [error] interface.
func (e *UnrecognizedKeyError) Error() string {
	return fmt.Sprintf("unexpected key `%s` with value `%v` in `%s`",
		e.Key, e.Value, Namespace)
}

// Is implements the [errors.Is] interface.
func (*UnrecognizedKeyError) Is(other error) bool {
	_, ok := other.(*UnrecognizedKeyError)
	return ok
}
