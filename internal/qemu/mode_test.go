// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/uefirun/internal/qemu"
	"github.com/stretchr/testify/assert"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		path     string
		expected qemu.Mode
	}{
		{"target/x86_64/debug/deps/my_test-abcd1234", qemu.ModeTest},
		{"/abs/target/x86_64-unknown-uefi/debug/deps/app-0123.efi", qemu.ModeTest},
		{"deps/app.efi", qemu.ModeTest},
		{"target/x86_64/debug/my_bin", qemu.ModeRun},
		{"target/deps-extra/my_bin", qemu.ModeRun},
		{"target/deps/sub/my_bin", qemu.ModeRun},
		{"deps", qemu.ModeRun},
		{"my_bin", qemu.ModeRun},
		{"/my_bin", qemu.ModeRun},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, qemu.DetectMode(tt.path))
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "run", qemu.ModeRun.String())
	assert.Equal(t, "test", qemu.ModeTest.String())
}
