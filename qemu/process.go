// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Process is a handle to a spawned QEMU process that survived the startup
// liveness check.
//
// The handle is the exclusive owner of the OS process resource. Dropping it
// without calling [Process.Wait] or [Process.Kill] leaves the child running
// and unreaped until the parent exits.
type Process struct {
	cmd     *exec.Cmd
	waitCh  chan error
	stderr  *bytes.Buffer
	waited  bool
	waitErr error
}

func startProcess(
	ctx context.Context,
	executable string,
	args []string,
	startupDelay time.Duration,
	stderr io.Writer,
) (*Process, error) {
	cmd := exec.CommandContext(ctx, executable, args...)

	var captured *bytes.Buffer
	if stderr == nil {
		captured = &bytes.Buffer{}
		stderr = captured
	}

	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", executable, err)
	}

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- cmd.Wait()
	}()

	timer := time.NewTimer(startupDelay)
	defer timer.Stop()

	select {
	case <-waitCh:
		// The process exited within the liveness window. Wait has returned,
		// so the captured stderr is complete.
		var output string
		if captured != nil {
			output = strings.TrimSpace(captured.String())
		}

		return nil, &RuntimeError{
			Output:   output,
			ExitCode: cmd.ProcessState.ExitCode(),
		}
	case <-timer.C:
		return &Process{
			cmd:    cmd,
			waitCh: waitCh,
			stderr: captured,
		}, nil
	}
}

// Pid returns the process ID of the spawned process.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the process exits and returns its exit code. A non-zero
// exit code is not reported as an error. Wait may be called multiple times;
// subsequent calls return the stored result.
func (p *Process) Wait() (int, error) {
	if !p.waited {
		p.waitErr = <-p.waitCh
		p.waited = true
	}

	err := p.waitErr

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = nil
	}

	if err != nil {
		return -1, fmt.Errorf("wait: %w", err)
	}

	return p.cmd.ProcessState.ExitCode(), nil
}

// Kill terminates the process immediately. The caller still needs to call
// [Process.Wait] to reap it.
func (p *Process) Kill() error {
	if err := p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill: %w", err)
	}

	return nil
}

// Signal sends the given signal to the process.
func (p *Process) Signal(sig os.Signal) error {
	if err := p.cmd.Process.Signal(sig); err != nil {
		return fmt.Errorf("signal: %w", err)
	}

	return nil
}

// Stderr returns the captured standard error output of the process. It
// returns an empty string while the process is still running, if the stream
// was redirected with [Builder.WithStderr], or if [Process.Wait] has not
// been called yet.
func (p *Process) Stderr() string {
	if p.stderr == nil || !p.waited {
		return ""
	}

	return p.stderr.String()
}
