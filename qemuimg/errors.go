// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemuimg

import (
	"errors"
	"fmt"
)

var (
	// ErrFormatInvalid is returned if an image format is invalid.
	ErrFormatInvalid = errors.New("unknown image format")

	// ErrPathEmpty is returned if an empty image path is given.
	ErrPathEmpty = errors.New("image path must not be empty")

	// ErrSizeInvalid is returned if an image size is not positive.
	ErrSizeInvalid = errors.New("image size must be greater than zero")
)

// ToolError is returned if the image tool exited non-zero. Output carries
// the tool's captured output verbatim.
type ToolError struct {
	Output   string
	ExitCode int
}

// Error implements the [error] interface.
func (e *ToolError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("image tool failed with exit code %d", e.ExitCode)
	}

	return fmt.Sprintf(
		"image tool failed with exit code %d: %s",
		e.ExitCode,
		e.Output,
	)
}

// Is implements the [errors.Is] interface.
func (*ToolError) Is(other error) bool {
	_, ok := other.(*ToolError)
	return ok
}
