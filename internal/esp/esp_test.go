// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package esp_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/uefirun/internal/cargo"
	"github.com/aibor/uefirun/internal/config"
	"github.com/aibor/uefirun/internal/esp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func workspace(t *testing.T) (cargo.Static, string) {
	t.Helper()

	root := t.TempDir()

	return cargo.Static{
		Root:            root,
		TargetDirectory: filepath.Join(root, "target"),
	}, root
}

func TestAssemble(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "target", "x86_64-unknown-uefi",
		"debug", "app.efi"), "MZ boot image")
	font := writeFile(t, filepath.Join(root, "assets", "font.bin"), "\x00\x01\x02font")
	cfg := writeFile(t, filepath.Join(root, "assets", "app.cfg"), "key=value\n")

	files := []config.CopyEntry{
		{Source: font, Destination: "font.bin"},
		{Source: cfg, Destination: "conf/app/app.cfg"},
	}

	path, err := esp.Assemble(context.Background(), metadata, bootImage, files)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "target", "esp"), path)

	expected := map[string]string{
		"EFI/BOOT/BOOTX64.EFI": "MZ boot image",
		"font.bin":             "\x00\x01\x02font",
		"conf/app/app.cfg":     "key=value\n",
	}

	for name, content := range expected {
		actual, err := os.ReadFile(filepath.Join(path, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.Equal(t, content, string(actual), name)
	}
}

func TestAssemble_Overwrites(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "first.efi"), "first")

	path, err := esp.Assemble(context.Background(), metadata, bootImage, nil)
	require.NoError(t, err)

	bootImage = writeFile(t, filepath.Join(root, "second.efi"), "2nd")

	_, err = esp.Assemble(context.Background(), metadata, bootImage, nil)
	require.NoError(t, err)

	actual, err := os.ReadFile(filepath.Join(path, "EFI", "BOOT", "BOOTX64.EFI"))
	require.NoError(t, err)
	assert.Equal(t, "2nd", string(actual))
}

func TestAssemble_Errors(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "app.efi"), "boot")
	extra := writeFile(t, filepath.Join(root, "extra"), "extra")

	tests := []struct {
		name        string
		metadata    cargo.Metadata
		bootImage   string
		files       []config.CopyEntry
		expectedErr error
		errContains string
	}{
		{
			name:        "metadata fails",
			metadata:    failingMetadata{},
			bootImage:   bootImage,
			expectedErr: assert.AnError,
		},
		{
			name:        "missing boot image",
			metadata:    metadata,
			bootImage:   filepath.Join(root, "missing.efi"),
			expectedErr: os.ErrNotExist,
			errContains: "copy " + filepath.Join(root, "missing.efi"),
		},
		{
			name:        "boot image is a directory",
			metadata:    metadata,
			bootImage:   root,
			expectedErr: esp.ErrNotRegularFile,
		},
		{
			name:      "missing extra file",
			metadata:  metadata,
			bootImage: bootImage,
			files: []config.CopyEntry{
				{Source: filepath.Join(root, "nope"), Destination: "nope"},
			},
			expectedErr: os.ErrNotExist,
			errContains: filepath.Join(root, "nope") + " to nope",
		},
		{
			name:      "escaping destination",
			metadata:  metadata,
			bootImage: bootImage,
			files: []config.CopyEntry{
				{Source: extra, Destination: "../../outside"},
			},
			expectedErr: esp.ErrNotLocal,
		},
		{
			name:      "absolute destination",
			metadata:  metadata,
			bootImage: bootImage,
			files: []config.CopyEntry{
				{Source: extra, Destination: "/etc/passwd"},
			},
			expectedErr: esp.ErrNotLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := esp.Assemble(
				context.Background(),
				tt.metadata,
				tt.bootImage,
				tt.files,
			)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
			}
		})
	}
}

func TestAssemble_MkdirFails(t *testing.T) {
	root := t.TempDir()

	// A regular file where the target directory is expected.
	target := writeFile(t, filepath.Join(root, "target"), "")
	bootImage := writeFile(t, filepath.Join(root, "app.efi"), "boot")

	metadata := cargo.Static{Root: root, TargetDirectory: target}

	_, err := esp.Assemble(context.Background(), metadata, bootImage, nil)
	require.ErrorIs(t, err, &esp.IOError{})
	assert.ErrorContains(t, err, "mkdir")
}

type failingMetadata struct{}

func (failingMetadata) Metadata(_ context.Context) (cargo.Workspace, error) {
	return cargo.Workspace{}, assert.AnError
}

func TestAssemble_ManyFiles(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "app.efi"), "boot")

	var files []config.CopyEntry

	for idx := range 16 {
		name := fmt.Sprintf("file%02d.bin", idx)
		source := writeFile(t, filepath.Join(root, "assets", name), name)
		files = append(files, config.CopyEntry{
			Source:      source,
			Destination: "data/" + name,
		})
	}

	path, err := esp.Assemble(context.Background(), metadata, bootImage, files)
	require.NoError(t, err)

	for _, file := range files {
		actual, err := os.ReadFile(filepath.Join(path, filepath.FromSlash(file.Destination)))
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(file.Source), string(actual))
	}
}

func TestAssemble_SameDestinationLastWins(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "app.efi"), "boot")
	first := writeFile(t, filepath.Join(root, "a.cfg"), "a")
	second := writeFile(t, filepath.Join(root, "b.cfg"), "b")

	files := []config.CopyEntry{
		{Source: first, Destination: "app.cfg"},
		{Source: second, Destination: "app.cfg"},
	}

	path, err := esp.Assemble(context.Background(), metadata, bootImage, files)
	require.NoError(t, err)

	actual, err := os.ReadFile(filepath.Join(path, "app.cfg"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(actual))
}

func TestAssemble_Cancelled(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "app.efi"), "boot")
	extra := writeFile(t, filepath.Join(root, "extra"), "extra")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := esp.Assemble(ctx, metadata, bootImage, []config.CopyEntry{
		{Source: extra, Destination: "extra"},
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAssemble_FirstFailureReported(t *testing.T) {
	metadata, root := workspace(t)

	bootImage := writeFile(t, filepath.Join(root, "app.efi"), "boot")
	extra := writeFile(t, filepath.Join(root, "extra"), "extra")

	files := []config.CopyEntry{
		{Source: extra, Destination: "extra"},
		{Source: filepath.Join(root, "first-missing"), Destination: "a"},
		{Source: filepath.Join(root, "second-missing"), Destination: "b"},
	}

	for range 5 {
		_, err := esp.Assemble(context.Background(), metadata, bootImage, files)
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, "first-missing")
		assert.NotContains(t, err.Error(), "second-missing")
	}

	assert.FileExists(t, filepath.Join(root, "target", "esp", "extra"))
	assert.NoFileExists(t, filepath.Join(root, "target", "esp", "b"))
}
