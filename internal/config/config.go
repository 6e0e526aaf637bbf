// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Namespace is the path of the metadata table in the manifest.
const Namespace = "package.metadata.uefi-runner"

//nolint:gochecknoglobals
var namespacePath = []string{"package", "metadata", "uefi-runner"}

// Config is the configuration as found in the manifest.
//
// Nil fields are not set in the manifest. The zero value is a valid Config
// that results in all defaults.
type Config struct {
	// QEMU binary to run.
	QEMU *string

	// Firmware image passed to QEMU.
	BIOS *string

	// Arguments for normal runs.
	RunArgs []string

	// Arguments for test runs.
	TestArgs []string

	// Exit code of QEMU that indicates a successful test run.
	TestSuccessExitCode *int

	// Timeout for test runs in seconds.
	TestTimeout *uint32

	// Additional files to copy into the boot volume. Order is not
	// significant.
	Copy []CopyEntry
}

// CopyEntry is a single additional file for the boot volume.
type CopyEntry struct {
	// Source file path. Relative paths are relative to the working directory.
	Source string

	// Destination path relative to the boot volume root.
	Destination string
}

// Read reads the manifest file at the given path and parses its uefirun
// configuration.
func Read(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, &ParseError{Path: path, Step: "open", Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, &ParseError{Path: path, Step: "read", Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}

		return Config{}, err
	}

	return cfg, nil
}

// Parse parses the uefirun configuration from the given manifest content.
//
// A missing metadata table is not an error. It results in a zero [Config].
func Parse(data []byte) (Config, error) {
	var manifest map[string]any

	err := toml.Unmarshal(data, &manifest)
	if err != nil {
		return Config{}, &ParseError{Step: "parse", Err: err}
	}

	value, found := lookup(manifest, namespacePath)
	if !found {
		return Config{}, nil
	}

	table, ok := value.(map[string]any)
	if !ok {
		return Config{}, &SchemaError{Value: value}
	}

	return decode(table)
}

func lookup(table map[string]any, path []string) (any, bool) {
	var value any = table

	for _, key := range path {
		current, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}

		value, ok = current[key]
		if !ok {
			return nil, false
		}
	}

	return value, true
}

func decode(table map[string]any) (Config, error) {
	var cfg Config

	// Sorted, so the reported error is stable if multiple keys are invalid.
	for _, key := range slices.Sorted(maps.Keys(table)) {
		err := cfg.set(key, table[key])
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func (c *Config) set(key string, value any) error {
	switch v := value.(type) {
	case string:
		switch key {
		case "qemu":
			c.QEMU = &v
			return nil
		case "bios":
			c.BIOS = &v
			return nil
		}
	case int64:
		switch key {
		case "test-timeout":
			timeout, err := timeoutFrom(v)
			if err != nil {
				return &ValidationError{Key: key, Err: err}
			}

			c.TestTimeout = &timeout

			return nil
		case "test-success-exit-code":
			if v < math.MinInt32 || v > math.MaxInt32 {
				return &ValidationError{
					Key: key,
					Err: fmt.Errorf("%d: %w", v, ErrOutOfRange),
				}
			}

			code := int(v)
			c.TestSuccessExitCode = &code

			return nil
		}
	case []any:
		switch key {
		case "run-args":
			args, err := stringSlice(key, v)
			if err != nil {
				return err
			}

			c.RunArgs = args

			return nil
		case "test-args":
			args, err := stringSlice(key, v)
			if err != nil {
				return err
			}

			c.TestArgs = args

			return nil
		}
	case map[string]any:
		if key == "copy" {
			entries, err := copyEntries(key, v)
			if err != nil {
				return err
			}

			c.Copy = entries

			return nil
		}
	}

	return &UnrecognizedKeyError{Key: key, Value: value}
}

func timeoutFrom(value int64) (uint32, error) {
	if value < 0 {
		return 0, ErrNegativeTimeout
	}

	if value > math.MaxUint32 {
		return 0, fmt.Errorf("%d: %w", value, ErrOutOfRange)
	}

	return uint32(value), nil
}

func stringSlice(key string, values []any) ([]string, error) {
	strs := make([]string, 0, len(values))

	for _, value := range values {
		str, ok := value.(string)
		if !ok {
			return nil, &TypeError{Key: key, Value: value}
		}

		strs = append(strs, str)
	}

	return strs, nil
}

func copyEntries(key string, table map[string]any) ([]CopyEntry, error) {
	entries := make([]CopyEntry, 0, len(table))

	for _, source := range slices.Sorted(maps.Keys(table)) {
		destination, ok := table[source].(string)
		if !ok {
			return nil, &TypeError{Key: key, Value: table[source]}
		}

		entries = append(entries, CopyEntry{
			Source:      source,
			Destination: destination,
		})
	}

	return entries, nil
}
