// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"fmt"
	"path/filepath"
)

// FilePath is an absolute path to a file.
type FilePath string

// Check returns an error if the path does not point to an existing regular
// file.
func (f FilePath) Check() error {
	return checkRegularFile(string(f))
}

// AbsoluteFilePath returns the given path as absolute [FilePath].
func AbsoluteFilePath(path string) (FilePath, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("ensure absolute path: %w", err)
	}

	return FilePath(path), nil
}
