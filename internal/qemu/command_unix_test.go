// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package qemu_test

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// assertReaped asserts that the process with the PID written in pidFile does
// not exist anymore, neither running nor as zombie.
func assertReaped(t *testing.T, pidFile string) {
	t.Helper()

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err, "fake qemu should have written its PID")

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)

	err = unix.Kill(pid, 0)
	require.ErrorIs(t, err, unix.ESRCH, "process should be reaped")
}
