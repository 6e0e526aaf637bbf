// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cargo_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/aibor/uefirun/internal/cargo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "CARGO_TEST_HELPER"

// TestMain lets the test binary act as fake cargo binary.
func TestMain(m *testing.M) {
	switch os.Getenv(helperEnv) {
	case "":
		os.Exit(m.Run())
	case "ok":
		if strings.Join(os.Args[1:], " ") != "metadata --no-deps --format-version 1" {
			fmt.Fprintln(os.Stderr, "unexpected args:", os.Args[1:])
			os.Exit(2)
		}

		fmt.Println(`{"packages":[],"workspace_root":"/src/app",` +
			`"target_directory":"/src/app/target","version":1}`)
	case "garbage":
		fmt.Println("no json")
	case "incomplete":
		fmt.Println(`{"workspace_root":"/src/app"}`)
	case "fail":
		fmt.Fprintln(os.Stderr, "error: could not find `Cargo.toml`")
		os.Exit(101)
	}

	os.Exit(0)
}

func TestCommand_Metadata(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		expected    cargo.Workspace
		expectedErr error
		errContains string
	}{
		{
			name: "success",
			mode: "ok",
			expected: cargo.Workspace{
				Root:            "/src/app",
				TargetDirectory: "/src/app/target",
			},
		},
		{
			name:        "failure",
			mode:        "fail",
			expectedErr: &cargo.CommandError{},
			errContains: "could not find `Cargo.toml`",
		},
		{
			name:        "garbage output",
			mode:        "garbage",
			expectedErr: &cargo.CommandError{},
			errContains: "decode",
		},
		{
			name:        "incomplete output",
			mode:        "incomplete",
			expectedErr: cargo.ErrIncompleteMetadata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(helperEnv, tt.mode)

			cmd := cargo.Command{Executable: os.Args[0]}

			actual, err := cmd.Metadata(context.Background())
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorContains(t, err, tt.errContains)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestCommand_MetadataFromEnv(t *testing.T) {
	t.Setenv(helperEnv, "ok")
	t.Setenv("CARGO", os.Args[0])

	actual, err := (&cargo.Command{}).Metadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/src/app", actual.Root)
}

func TestCommand_MetadataNotFound(t *testing.T) {
	cmd := cargo.Command{Executable: "/nonexistent/cargo"}

	_, err := cmd.Metadata(context.Background())
	require.ErrorIs(t, err, &cargo.CommandError{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWorkspace_Manifest(t *testing.T) {
	w := cargo.Workspace{Root: "/src/app"}
	assert.Equal(t, "/src/app/Cargo.toml", w.Manifest())
}

type countingMetadata struct {
	calls int
	err   error
}

func (c *countingMetadata) Metadata(_ context.Context) (cargo.Workspace, error) {
	c.calls++
	if c.err != nil {
		return cargo.Workspace{}, c.err
	}

	return cargo.Workspace{Root: "/r", TargetDirectory: "/r/target"}, nil
}

func TestCached(t *testing.T) {
	t.Run("success is cached", func(t *testing.T) {
		inner := &countingMetadata{}
		cached := cargo.Cached(inner)

		for range 3 {
			actual, err := cached.Metadata(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "/r/target", actual.TargetDirectory)
		}

		assert.Equal(t, 1, inner.calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		inner := &countingMetadata{err: assert.AnError}
		cached := cargo.Cached(inner)

		_, err := cached.Metadata(context.Background())
		require.ErrorIs(t, err, assert.AnError)

		inner.err = nil

		_, err = cached.Metadata(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, inner.calls)
	})
}

func TestStatic(t *testing.T) {
	expected := cargo.Workspace{Root: "/a", TargetDirectory: "/b"}

	actual, err := cargo.Static(expected).Metadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
