// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package esp assembles an EFI system partition directory that QEMU serves to
// the guest as FAT formatted drive.
//
// The layout mimics a removable boot medium. The firmware loads the default
// boot loader path "EFI/BOOT/BOOTX64.EFI".
package esp
