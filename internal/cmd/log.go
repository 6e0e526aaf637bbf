// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
)

// setupLogging sets the default logger to a text logger writing to writer.
// The level starts at [slog.LevelInfo] and can be changed with the returned
// [slog.LevelVar].
func setupLogging(writer io.Writer) *slog.LevelVar {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))

	return level
}
