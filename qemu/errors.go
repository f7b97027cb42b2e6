// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal when the final argument list is compiled.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrVGATypeInvalid is returned if a VGA type is invalid.
	ErrVGATypeInvalid = errors.New("unknown vga type")

	// ErrDriveMediaInvalid is returned if a drive media type is invalid.
	ErrDriveMediaInvalid = errors.New("unknown drive media")
)

// ConfigError indicates a configuration value was constructed with
// insufficient information to ever render a valid argument.
type ConfigError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ConfigError) Is(other error) bool {
	_, ok := other.(*ConfigError)
	return ok
}

// ArgumentError indicates a configuration value failed a semantic guard at
// the point it would have been rendered into arguments.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// RuntimeError is returned if the spawned process exited during the
// post-launch liveness window. Output carries the captured standard error
// text, if any.
type RuntimeError struct {
	Output   string
	ExitCode int
}

// Error implements the [error] interface.
func (e *RuntimeError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf(
			"process exited during startup with exit code %d",
			e.ExitCode,
		)
	}

	return fmt.Sprintf(
		"process exited during startup with exit code %d: %s",
		e.ExitCode,
		e.Output,
	)
}

// Is implements the [errors.Is] interface.
func (*RuntimeError) Is(other error) bool {
	_, ok := other.(*RuntimeError)
	return ok
}
