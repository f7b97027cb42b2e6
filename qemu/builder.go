// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"context"
	"io"
	"time"

	"github.com/qemurun/qemurun/internal/sys"
)

// DefaultStartupDelay is the default duration [Builder.Start] waits before
// polling whether the spawned process is still alive.
const DefaultStartupDelay = 500 * time.Millisecond

// Builder accumulates configuration fragments and compiles them into the
// final launch command.
//
// Create one with [New], chain [Builder.With] calls and launch with
// [Builder.Start]. Fragments render in the order they were added. The
// accumulated fragments are consumed by Start; a Builder is meant for a
// single launch attempt.
type Builder struct {
	executable   string
	configs      []Config
	extraArgs    []Argument
	enableKVM    bool
	startupDelay time.Duration
	stderr       io.Writer
}

// New creates a new [Builder] for the given QEMU executable.
//
// The executable is resolved eagerly: a path to an existing file is used
// verbatim, a bare name is searched in the directories listed in the PATH
// environment variable. If neither resolves, a [sys.ExecNotFoundError] is
// returned.
func New(executable string) (*Builder, error) {
	path, err := sys.ResolveExecutable(executable)
	if err != nil {
		return nil, err
	}

	return &Builder{
		executable:   path,
		startupDelay: DefaultStartupDelay,
	}, nil
}

// Executable returns the resolved path of the QEMU executable.
func (b *Builder) Executable() string {
	return b.executable
}

// With appends the given configuration values. It returns the builder for
// chaining and never fails; rendering errors surface on [Builder.Start].
func (b *Builder) With(configs ...Config) *Builder {
	b.configs = append(b.configs, configs...)
	return b
}

// WithArgs appends raw [Argument]s after all configuration fragments, for
// QEMU options the typed configuration values do not cover.
func (b *Builder) WithArgs(args ...Argument) *Builder {
	b.extraArgs = append(b.extraArgs, args...)
	return b
}

// EnableKVM enables KVM hardware acceleration. Use [KVMAvailable] to check
// whether the host supports it.
func (b *Builder) EnableKVM() *Builder {
	b.enableKVM = true
	return b
}

// WithStartupDelay sets the duration [Builder.Start] waits before polling
// the spawned process. The default is [DefaultStartupDelay].
func (b *Builder) WithStartupDelay(delay time.Duration) *Builder {
	b.startupDelay = delay
	return b
}

// WithStderr redirects the spawned process's standard error stream to the
// given writer instead of capturing it. With a redirected stream a
// [RuntimeError] carries no output text.
func (b *Builder) WithStderr(w io.Writer) *Builder {
	b.stderr = w
	return b
}

// Args renders all accumulated fragments into the argument strings the
// process will be spawned with, not including the executable itself.
func (b *Builder) Args() ([]string, error) {
	args := make([]Argument, 0, len(b.configs)+len(b.extraArgs)+1)

	if b.enableKVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	for _, config := range b.configs {
		configArgs, err := config.arguments()
		if err != nil {
			return nil, err
		}

		args = append(args, configArgs...)
	}

	args = append(args, b.extraArgs...)

	return buildArgumentStrings(args)
}

// Start compiles the accumulated arguments and spawns the QEMU process.
//
// After a successful spawn it waits for the configured startup delay and
// polls whether the process is still running. If the process exited within
// that window, a [RuntimeError] carrying the captured standard error output
// is returned. This is a best-effort heuristic, not a readiness guarantee:
// a process failing after the window is not detected here.
//
// The accumulated fragments are consumed. The returned [Process] is owned
// by the caller, who is responsible for reaping it via [Process.Wait] or
// [Process.Kill].
func (b *Builder) Start(ctx context.Context) (*Process, error) {
	args, err := b.Args()
	if err != nil {
		return nil, err
	}

	b.configs = nil
	b.extraArgs = nil

	return startProcess(ctx, b.executable, args, b.startupDelay, b.stderr)
}
