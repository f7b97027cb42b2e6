// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

// Package initrd writes minimal initramfs cpio archives for direct kernel
// boot. The init binary is placed at "/init", additional files keep their
// base name in the directory they are added to.
package initrd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/cpio"
)

const dirLinks = 2

// Archive writes a newc format cpio archive.
type Archive struct {
	writer *cpio.Writer
}

// New creates a new [Archive] writing to the given writer.
func New(w io.Writer) *Archive {
	return &Archive{
		writer: cpio.NewWriter(w),
	}
}

// AddInit adds the file at the given path as "/init". It must be a
// statically linked executable or have its dependencies added alongside.
func (a *Archive) AddInit(path string) error {
	return a.addFile(path, "init")
}

// AddDirectory adds a directory entry with the given name.
func (a *Archive) AddDirectory(name string) error {
	header := &cpio.Header{
		Name:  name,
		Mode:  cpio.TypeDir | cpio.ModePerm,
		Links: dirLinks,
	}

	if err := a.writer.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", name, err)
	}

	return nil
}

// AddFile adds the file at the given path into the given archive directory,
// keeping its base name and file mode.
func (a *Archive) AddFile(path, dir string) error {
	return a.addFile(path, filepath.Join(dir, filepath.Base(path)))
}

// Close flushes and closes the archive. It does not close the underlying
// writer.
func (a *Archive) Close() error {
	if err := a.writer.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (a *Archive) addFile(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", path)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	header := &cpio.Header{
		Name: name,
		Mode: cpio.FileMode(info.Mode().Perm()),
		Size: info.Size(),
	}

	if err := a.writer.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", name, err)
	}

	if _, err := a.writer.Write(body); err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}
