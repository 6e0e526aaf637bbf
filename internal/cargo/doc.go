// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cargo provides the workspace paths of the cargo project uefirun is
// invoked for.
package cargo
