// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/uefirun/internal/cargo"
	"github.com/aibor/uefirun/internal/config"
	"github.com/aibor/uefirun/internal/esp"
	"github.com/aibor/uefirun/internal/exitcode"
	"github.com/aibor/uefirun/internal/qemu"
)

const localConfigFile = ".uefirun-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

// readConfig reads the configuration from the manifest given by flags or from
// the manifest of the cargo workspace.
func readConfig(
	ctx context.Context,
	flags *flags,
	metadata cargo.Metadata,
) (config.Config, error) {
	manifestPath := flags.ManifestPath
	if manifestPath == "" {
		workspace, err := metadata.Metadata(ctx)
		if err != nil {
			return config.Config{}, fmt.Errorf("cargo metadata: %w", err)
		}

		manifestPath = workspace.Manifest()
	}

	slog.Debug("Reading configuration", slog.String("manifest", manifestPath))

	cfg, err := config.Read(manifestPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func newQemuCommand(
	flags *flags,
	cfg config.Config,
	espPath string,
) *qemu.Command {
	mode := qemu.DetectMode(flags.BootImage)

	profile := qemu.NewProfile(cfg, mode, espPath)
	if flags.TimeoutSet {
		profile = profile.WithTimeout(flags.Timeout)
	}

	slog.Debug("QEMU profile",
		slog.String("mode", mode.String()),
		slog.Int("success_exit_code", profile.SuccessExitCode()),
		slog.Duration("timeout", profile.Timeout()),
	)

	return qemu.NewCommand(profile, mode)
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	err := ValidateFilePath(flags.BootImage)
	if err != nil {
		return fmt.Errorf("validate file: %w", err)
	}

	metadata := cargo.Cached(&cargo.Command{Executable: flags.Cargo})

	conf, err := readConfig(ctx, flags, metadata)
	if err != nil {
		return err
	}

	espPath, err := esp.Assemble(ctx, metadata, flags.BootImage, conf.Copy)
	if err != nil {
		return fmt.Errorf("assemble esp: %w", err)
	}

	cmd := newQemuCommand(flags, conf, espPath)

	exitCode, err := cmd.Run(ctx, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	if err != nil {
		return fmt.Errorf("qemu: %w", err)
	}

	return exitcode.Of(exitCode)
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	// Do not print the error in case QEMU ran properly and just did not
	// report success.
	if exitCode, ok := exitcode.From(err); ok {
		return exitCode
	}

	slog.Error(err.Error())

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	logLevel := setupLogging(cfg.Stderr)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	logLevel.Set(flags.logLevel())

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return -1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
