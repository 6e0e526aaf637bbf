// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"
	"strings"
	"time"

	"github.com/aibor/uefirun/internal/config"
)

const (
	// DefaultExecutable is the QEMU binary used if none is configured.
	DefaultExecutable = "qemu-system-x86_64"

	// DefaultFirmware is the UEFI firmware image used if none is configured.
	DefaultFirmware = "OVMF.fd"

	// DefaultSuccessExitCode is the exit code of QEMU that indicates a
	// successful test run if none is configured.
	DefaultSuccessExitCode = 0

	// DefaultTimeout is the maximum duration of a test run if none is
	// configured.
	DefaultTimeout = 300 * time.Second
)

// Profile is the fully resolved QEMU invocation.
//
// It is built once by [NewProfile] and must not be modified afterwards.
type Profile struct {
	executable      string
	args            []string
	successExitCode int
	timeout         time.Duration
}

// NewProfile resolves the given [config.Config] for the given [Mode] and ESP
// directory into a [Profile].
//
// Absent values are replaced by defaults. The mode specific arguments are
// followed by the firmware and drive arguments, so the ESP is always
// attached regardless of the configured arguments.
func NewProfile(cfg config.Config, mode Mode, espPath string) Profile {
	profile := Profile{
		executable:      DefaultExecutable,
		successExitCode: DefaultSuccessExitCode,
		timeout:         DefaultTimeout,
	}

	if cfg.QEMU != nil {
		profile.executable = *cfg.QEMU
	}

	if cfg.TestSuccessExitCode != nil {
		profile.successExitCode = *cfg.TestSuccessExitCode
	}

	if cfg.TestTimeout != nil {
		profile.timeout = time.Duration(*cfg.TestTimeout) * time.Second
	}

	firmware := DefaultFirmware
	if cfg.BIOS != nil {
		firmware = *cfg.BIOS
	}

	baseArgs := cfg.RunArgs
	if mode == ModeTest {
		baseArgs = cfg.TestArgs
	}

	required := BuildArgumentStrings([]Argument{
		Arg("bios", firmware),
		Arg("drive", "format=raw", "file=fat:rw:"+espPath),
	})

	profile.args = slices.Concat(baseArgs, required)

	return profile
}

// WithTimeout returns a copy of the [Profile] with the given timeout.
func (p Profile) WithTimeout(timeout time.Duration) Profile {
	p.args = slices.Clone(p.args)
	p.timeout = timeout

	return p
}

// Executable returns the QEMU binary.
func (p Profile) Executable() string {
	return p.executable
}

// Args returns a copy of the complete argument list.
func (p Profile) Args() []string {
	return slices.Clone(p.args)
}

// SuccessExitCode returns the QEMU exit code that indicates a successful
// test run.
func (p Profile) SuccessExitCode() int {
	return p.successExitCode
}

// Timeout returns the maximum duration of a test run.
func (p Profile) Timeout() time.Duration {
	return p.timeout
}

// String returns the command line as it is run.
func (p Profile) String() string {
	return strings.Join(append([]string{p.executable}, p.args...), " ")
}
