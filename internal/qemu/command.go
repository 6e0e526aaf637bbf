// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/aibor/uefirun/internal/exitcode"
)

// ioWaitDelay is the time output copying may take after QEMU terminated.
const ioWaitDelay = time.Second

// Command is a single QEMU invocation that can be run once.
type Command struct {
	profile Profile
	mode    Mode
}

// NewCommand creates a new [Command] for the given [Profile] and [Mode].
func NewCommand(profile Profile, mode Mode) *Command {
	return &Command{
		profile: profile,
		mode:    mode,
	}
}

// String returns the command line as it is run.
func (c *Command) String() string {
	return c.profile.String()
}

// Run runs the QEMU command and returns the resulting exit code.
//
// In [ModeRun], it waits until QEMU terminates and returns its exit code.
//
// In [ModeTest], it waits at most [Profile.Timeout]. If QEMU terminated, 0
// is returned if its exit code matches [Profile.SuccessExitCode] and the
// actual exit code otherwise. If the timeout is exceeded, QEMU is killed and
// a [TimeoutError] is returned.
//
// If QEMU terminates without exit code, [exitcode.Undiscoverable] is returned.
// Cancelling the context kills QEMU as well.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) (int, error) {
	//nolint:gosec
	cmd := exec.Command(c.profile.Executable(), c.profile.Args()...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = ioWaitDelay

	slog.Info("Running",
		slog.String("mode", c.mode.String()),
		slog.String("command", c.String()),
	)

	err := cmd.Start()
	if err != nil {
		return -1, &SpawnError{Command: c.String(), Err: err}
	}

	if c.mode != ModeTest {
		state, err := wait(ctx, cmd, nil)
		if err != nil {
			return -1, err
		}

		logState(state)

		return exitcode.FromState(state), nil
	}

	state, err := waitTimeout(ctx, cmd, c.profile.Timeout())
	if err != nil {
		return -1, err
	}

	logState(state)

	return exitcode.Resolve(state, c.profile.SuccessExitCode()), nil
}

// waitTimeout waits for the started cmd to terminate at most for the given
// duration. If it does not terminate in time, it is killed and reaped and a
// [TimeoutError] is returned.
func waitTimeout(
	ctx context.Context,
	cmd *exec.Cmd,
	timeout time.Duration,
) (*os.ProcessState, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	state, err := wait(ctx, cmd, timer.C)
	if errors.Is(err, errExpired) {
		return nil, &TimeoutError{Timeout: timeout}
	}

	return state, err
}

var errExpired = errors.New("expired")

// wait waits for the started cmd to terminate. If expired fires or the
// context is done before, the process is killed and reaped. A nil expired
// channel never fires.
//
// The process is always reaped when wait returns.
func wait(
	ctx context.Context,
	cmd *exec.Cmd,
	expired <-chan time.Time,
) (*os.ProcessState, error) {
	done := make(chan error, 1)

	go func() {
		done <- cmd.Wait()
	}()

	var reason error

	select {
	case err := <-done:
		return processState(cmd, err)
	case <-expired:
		reason = errExpired
	case <-ctx.Done():
		reason = ctx.Err()
	}

	// The process might have terminated right when the timer fired.
	select {
	case err := <-done:
		return processState(cmd, err)
	default:
	}

	slog.Debug("Killing qemu", slog.Any("reason", reason))

	killErr := cmd.Process.Kill()

	// Always reap, so no zombie is left behind, even if the kill failed.
	<-done

	if killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
		return nil, &WaitError{Op: "kill", Err: killErr}
	}

	if errors.Is(reason, errExpired) {
		return nil, reason
	}

	return nil, &WaitError{Op: "wait", Err: reason}
}

// processState returns the state of the terminated cmd. Exit errors are not
// considered errors, as the exit code is evaluated by the caller.
func processState(cmd *exec.Cmd, err error) (*os.ProcessState, error) {
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, &WaitError{Op: "wait", Err: err}
	}

	return cmd.ProcessState, nil
}

func logState(state *os.ProcessState) {
	if sig, ok := terminationSignal(state); ok {
		slog.Warn("QEMU terminated by signal", slog.String("signal", sig))
		return
	}

	slog.Debug("QEMU exited", slog.Int("exit_code", state.ExitCode()))
}
