// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package sys

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ResolveExecutable resolves an executable reference to a path.
//
// If the reference points to an existing regular file as given, it is used
// verbatim. Otherwise the directories listed in the PATH environment
// variable are scanned in order and the first one containing a regular,
// executable file with that name wins.
func ResolveExecutable(ref string) (string, error) {
	if ref == "" {
		return "", ErrEmptyFilePath
	}

	if checkRegularFile(ref) == nil {
		return ref, nil
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			// An empty PATH element is the current directory.
			dir = "."
		}

		candidate := filepath.Join(dir, ref)
		if checkExecutableFile(candidate) == nil {
			return candidate, nil
		}
	}

	return "", &ExecNotFoundError{Name: ref}
}

func checkRegularFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}

func checkExecutableFile(path string) error {
	if err := checkRegularFile(path); err != nil {
		return err
	}

	if err := unix.Access(path, unix.X_OK); err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}

	return nil
}
