// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running the QEMU command
// that boots an ESP directory with UEFI firmware. It expects the required QEMU
// binary and firmware image to be present on the system.
//
// In [ModeTest], the guest is expected to terminate QEMU with a defined exit
// code, e.g. by using the "isa-debug-exit" device. The exit code is compared
// with [Profile.SuccessExitCode] and QEMU is killed if it does not terminate
// within [Profile.Timeout].
package qemu
