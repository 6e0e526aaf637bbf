// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config reads the uefirun configuration from a cargo manifest.
//
// The configuration is an optional table in the manifest:
//
//	[package.metadata.uefi-runner]
//	qemu = "qemu-system-x86_64"
//	bios = "/usr/share/OVMF/OVMF_CODE.fd"
//	run-args = ["-m", "512"]
//	test-args = ["-display", "none", "-device", "isa-debug-exit,iobase=0xf4,iosize=0x04"]
//	test-success-exit-code = 33
//	test-timeout = 60
//
//	[package.metadata.uefi-runner.copy]
//	"assets/font.bin" = "font.bin"
//
// All keys are optional. If the table is missing entirely, all defaults
// apply.
package config
