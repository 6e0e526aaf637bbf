// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strings"
)

// Argument is a QEMU argument with or without value.
//
// An argument created with a value keeps it even if it is empty, so the
// following argument is never taken as its value.
type Argument struct {
	name     string
	value    string
	hasValue bool
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	s := "-" + a.name
	if a.hasValue {
		s += " " + a.value
	}

	return s
}

// Name returns the name of the [Argument].
func (a Argument) Name() string {
	return a.name
}

// Value returns the value of the [Argument].
func (a Argument) Value() string {
	return a.value
}

// Arg returns a new [Argument] with the given name. Multiple values are
// joined by comma, as QEMU expects for option lists.
func Arg(name string, value ...string) Argument {
	return Argument{
		name:     name,
		value:    strings.Join(value, ","),
		hasValue: len(value) > 0,
	}
}

// BuildArgumentStrings compiles the [Argument]s to into a slice of strings
// which can be used with [exec.Command].
func BuildArgumentStrings(args []Argument) []string {
	argStrings := make([]string, 0, 2*len(args))

	for _, arg := range args {
		argStrings = append(argStrings, "-"+arg.name)

		if arg.hasValue {
			argStrings = append(argStrings, arg.value)
		}
	}

	return argStrings
}
