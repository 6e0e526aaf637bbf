// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const (
	pkg          = "github.com/aibor/uefirun/cmd/uefirun"
	coverProfile = "cover.out"
)

//nolint:gochecknoglobals
var env = map[string]string{}

func init() {
	gobin, exists := os.LookupEnv("GOBIN")
	if !exists {
		gobin = "./gobin"
	}

	if gobin != "" {
		p, err := filepath.Abs(gobin)
		if err == nil {
			gobin = p
		}
	}

	env["GOBIN"] = gobin
}

// Install uefirun from the local source into the gobin directory.
func Install() error {
	path := filepath.Join(env["GOBIN"], "uefirun")

	modified, err := target.Dir(path, "cmd", "internal", "go.mod")
	if err != nil {
		return err
	}

	if !modified {
		return nil
	}

	return sh.RunWith(env, "go", "install", "./cmd/uefirun")
}

// Test runs all unit tests with race detector and coverage.
func Test() error {
	return sh.RunWithV(env, "go", "test",
		"-race",
		"-timeout", "2m",
		"-cover",
		"-coverprofile", coverProfile,
		"./...",
	)
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Build builds the uefirun binary into the current directory.
func Build() error {
	return sh.RunWith(env, "go", "build", "-trimpath", "-o", ".", pkg)
}

// Clean removes volatile files.
func Clean() error {
	err := sh.Rm(coverProfile)
	if err != nil {
		return err
	}

	return sh.Rm(env["GOBIN"])
}
