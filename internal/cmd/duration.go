// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"time"
)

// optionalDuration is a [flag.Value] for a non-negative duration that records
// if it has been set at all.
type optionalDuration struct {
	Value *time.Duration
	IsSet *bool
}

func (d *optionalDuration) String() string {
	if d.Value == nil || d.IsSet == nil || !*d.IsSet {
		return ""
	}

	return d.Value.String()
}

func (d *optionalDuration) Set(s string) error {
	value, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if value < 0 {
		return fmt.Errorf("%s: %w", value, ErrNegativeTimeout)
	}

	*d.Value = value
	*d.IsSet = true

	return nil
}
