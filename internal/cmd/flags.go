// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"
)

const (
	name = "uefirun"

	usageMessage = `Usage of 'uefirun':
    uefirun [flags...] FILE

Runs the given UEFI application in QEMU. Configuration is read from the
"package.metadata.uefi-runner" table of the crate's Cargo.toml.

Using it as cargo runner in .cargo/config.toml:
	[target.x86_64-unknown-uefi]
	runner = "uefirun"

Binaries in a "deps" directory are run as tests: the QEMU exit code is
compared to the configured success code and the run is aborted after the
configured timeout.

All uefirun flags can also be provided via environment variable UEFIRUN_ARGS:
	UEFIRUN_ARGS="-debug" cargo test

All uefirun flags can also be provided via file ./.uefirun-args, with one
argument per line.
`
)

type flags struct {
	flagSet *flag.FlagSet

	BootImage    string
	ManifestPath string
	Cargo        string
	Timeout      time.Duration
	TimeoutSet   bool
	Version      bool
	Debug        bool
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{}
	flags.initFlagset(output)

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.Version {
		return nil
	}

	positionalArgs := f.flagSet.Args()

	switch len(positionalArgs) {
	case 0:
		return f.fail("no file given", nil)
	case 1:
	default:
		return f.fail("too many arguments", nil)
	}

	bootImage, err := AbsoluteFilePath(positionalArgs[0])
	if err != nil {
		return f.fail("file path", err)
	}

	f.BootImage = bootImage

	return nil
}

func (f *flags) logLevel() slog.Level {
	if f.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		(*FilePath)(&f.ManifestPath),
		"manifest",
		"path to Cargo.toml to read the configuration from "+
			"(default is Cargo.toml in the cargo workspace root)",
	)

	flagSet.StringVar(
		&f.Cargo,
		"cargo",
		f.Cargo,
		"cargo binary used to query workspace metadata "+
			"(default is $CARGO or cargo)",
	)

	flagSet.Var(
		&optionalDuration{Value: &f.Timeout, IsSet: &f.TimeoutSet},
		"timeout",
		"test run timeout, overrides test-timeout of the manifest",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
