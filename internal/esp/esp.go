// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package esp

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aibor/uefirun/internal/cargo"
	"github.com/aibor/uefirun/internal/config"
)

const (
	// DirName is the name of the ESP directory in the target directory.
	DirName = "esp"

	// BootDir is the directory of the default boot loader.
	BootDir = "EFI/BOOT"

	// BootLoader is the default boot loader path the firmware loads from
	// removable media.
	BootLoader = BootDir + "/BOOTX64.EFI"
)

// Assemble creates the ESP directory in the workspace's target directory and
// populates it with the boot image and the given additional files.
//
// The ESP is reused across invocations. Files are overwritten, but files left
// over from earlier runs are not removed. It returns the path of the ESP
// directory. Any error aborts and files copied so far are kept.
//
// Additional files are copied one after another in the given order. If
// multiple entries share a destination, the last one wins. The first failing
// copy aborts the assembly.
func Assemble(
	ctx context.Context,
	metadata cargo.Metadata,
	bootImage string,
	files []config.CopyEntry,
) (string, error) {
	workspace, err := metadata.Metadata(ctx)
	if err != nil {
		return "", fmt.Errorf("target directory: %w", err)
	}

	builder := Builder{
		Root: filepath.Join(workspace.TargetDirectory, DirName),
	}

	err = builder.MkdirAll(filepath.FromSlash(BootDir))
	if err != nil {
		return "", err
	}

	err = builder.CopyFile(filepath.FromSlash(BootLoader), bootImage)
	if err != nil {
		return "", err
	}

	err = copyFiles(ctx, &builder, files)
	if err != nil {
		return "", err
	}

	slog.Debug("Assembled ESP",
		slog.String("path", builder.Root),
		slog.Int("files", len(files)+1),
	)

	return builder.Root, nil
}

func copyFiles(ctx context.Context, builder *Builder, files []config.CopyEntry) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("copy %s: %w", file.Source, err)
		}

		err := builder.CopyFile(filepath.FromSlash(file.Destination), file.Source)
		if err != nil {
			return err
		}
	}

	return nil
}
