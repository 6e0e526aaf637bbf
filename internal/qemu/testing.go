// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "github.com/stretchr/testify/assert"

// ArgumentValueAssertionFunc returns an [assert.ComparisonAssertionFunc] that
// can be used to assert the value of the last argument with the given name in
// an argument string list as returned by [Profile.Args].
func ArgumentValueAssertionFunc(
	name string,
	assertion assert.ComparisonAssertionFunc,
) assert.ComparisonAssertionFunc {
	return func(t assert.TestingT, arg1, arg2 any, arg3 ...any) bool {
		args, ok := arg1.([]string)
		if !assert.True(t, ok, "first argument should be []string") {
			return false
		}

		for idx := len(args) - 2; idx >= 0; idx-- {
			if args[idx] != "-"+name {
				continue
			}

			return assertion(t, args[idx+1], arg2, arg3...)
		}

		return assert.Fail(t, "Argument not found: "+name)
	}
}
