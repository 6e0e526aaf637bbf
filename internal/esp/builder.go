// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package esp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const dirMode = 0o755

// Builder writes files into the directory tree at Root.
//
// All names are relative to Root and must be local as defined by
// [filepath.IsLocal].
type Builder struct {
	Root string
}

func (b *Builder) path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%s: %w", name, ErrNotLocal)
	}

	return filepath.Join(b.Root, name), nil
}

// MkdirAll creates the directory with the given name including all parents.
func (b *Builder) MkdirAll(name string) error {
	path, err := b.path(name)
	if err != nil {
		return &IOError{Op: "mkdir", Destination: name, Err: err}
	}

	err = os.MkdirAll(path, dirMode)
	if err != nil {
		return &IOError{Op: "mkdir", Destination: path, Err: err}
	}

	return nil
}

// CopyFile copies the file at source to name. Parent directories of name
// are created as needed.
//
// An existing file is overwritten. The permission bits of the source are
// preserved.
func (b *Builder) CopyFile(name, source string) error {
	ioErr := func(err error) error {
		return &IOError{
			Op:          "copy",
			Source:      source,
			Destination: name,
			Err:         err,
		}
	}

	path, err := b.path(name)
	if err != nil {
		return ioErr(err)
	}

	err = os.MkdirAll(filepath.Dir(path), dirMode)
	if err != nil {
		return ioErr(err)
	}

	err = copyFile(path, source)
	if err != nil {
		return ioErr(err)
	}

	slog.Debug("Copied file into ESP",
		slog.String("source", source),
		slog.String("destination", path),
	)

	return nil
}

func copyFile(dst, src string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer srcFile.Close()

	stat, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	// Truncating the destination must not empty the source.
	dstStat, err := os.Stat(dst)
	if err == nil && os.SameFile(stat, dstStat) {
		return ErrSameFile
	}

	dstFile, err := os.OpenFile(
		dst,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		stat.Mode().Perm(),
	)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("write: %w", err)
	}

	err = dstFile.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	// OpenFile does not change the mode of existing files.
	err = os.Chmod(dst, stat.Mode().Perm())
	if err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	return nil
}
