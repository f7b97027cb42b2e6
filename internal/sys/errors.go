// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package sys

import "errors"

var (
	// ErrEmptyFilePath is returned if an empty file path is given.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if a path does not point to a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// ExecNotFoundError is returned if an executable could not be resolved via
// direct path or search path scan.
type ExecNotFoundError struct {
	// Name is the executable reference as originally given.
	Name string
}

// Error implements the [error] interface.
func (e *ExecNotFoundError) Error() string {
	return "could not find executable: " + e.Name
}

// Is implements the [errors.Is] interface.
func (*ExecNotFoundError) Is(other error) bool {
	_, ok := other.(*ExecNotFoundError)
	return ok
}
