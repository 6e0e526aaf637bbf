// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// ManifestName is the name of the cargo manifest file.
const ManifestName = "Cargo.toml"

// Workspace contains the paths of a cargo workspace.
type Workspace struct {
	// Root directory of the workspace.
	Root string `json:"workspace_root"`

	// Build output directory of the workspace.
	TargetDirectory string `json:"target_directory"`
}

// Manifest returns the path of the workspace's root manifest.
func (w Workspace) Manifest() string {
	return filepath.Join(w.Root, ManifestName)
}

// Metadata provides [Workspace] information.
type Metadata interface {
	Metadata(ctx context.Context) (Workspace, error)
}

var (
	_ Metadata = (*Command)(nil)
	_ Metadata = Static{}
)

// Command queries the workspace information by running "cargo metadata".
type Command struct {
	// Cargo binary. If empty, $CARGO is used if set or "cargo" otherwise.
	Executable string

	// Working directory to run cargo in. Empty means the current one.
	Dir string
}

// Metadata implements [Metadata].
func (c *Command) Metadata(ctx context.Context) (Workspace, error) {
	//nolint:gosec
	cmd := exec.CommandContext(ctx, c.executable(),
		"metadata",
		"--no-deps",
		"--format-version", "1",
	)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Query cargo metadata", slog.String("command", cmd.String()))

	err := cmd.Run()
	if err != nil {
		return Workspace{}, &CommandError{
			Command: cmd.String(),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	var workspace Workspace

	err = json.Unmarshal(stdout.Bytes(), &workspace)
	if err != nil {
		return Workspace{}, &CommandError{
			Command: cmd.String(),
			Err:     fmt.Errorf("decode: %w", err),
		}
	}

	if workspace.Root == "" || workspace.TargetDirectory == "" {
		return Workspace{}, &CommandError{
			Command: cmd.String(),
			Err:     ErrIncompleteMetadata,
		}
	}

	slog.Debug("Cargo workspace",
		slog.String("root", workspace.Root),
		slog.String("target", workspace.TargetDirectory),
	)

	return workspace, nil
}

func (c *Command) executable() string {
	if c.Executable != "" {
		return c.Executable
	}

	// Cargo sets $CARGO for processes it runs, like runners.
	if env := os.Getenv("CARGO"); env != "" {
		return env
	}

	return "cargo"
}

// Static is a [Metadata] that always returns the same [Workspace].
type Static Workspace

// Metadata implements [Metadata].
func (s Static) Metadata(_ context.Context) (Workspace, error) {
	return Workspace(s), nil
}

type cached struct {
	mu        sync.Mutex
	metadata  Metadata
	workspace *Workspace
}

// Cached returns a [Metadata] that queries the given one only until it
// succeeded once. Subsequent calls return the first result.
func Cached(metadata Metadata) Metadata {
	return &cached{metadata: metadata}
}

// Metadata implements [Metadata].
func (c *cached) Metadata(ctx context.Context) (Workspace, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workspace != nil {
		return *c.workspace, nil
	}

	workspace, err := c.metadata.Metadata(ctx)
	if err != nil {
		return Workspace{}, err //nolint:wrapcheck
	}

	c.workspace = &workspace

	return workspace, nil
}
