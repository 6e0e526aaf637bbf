// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for uefirun. It handles
// flag parsing, error handling, and output handling and wires the manifest
// configuration, the ESP assembly and the QEMU invocation.
package cmd
