// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemuimg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/qemurun/qemurun/internal/sys"
)

// DefaultTool is the image tool executable used if [Image.Tool] is not set.
const DefaultTool = "qemu-img"

// Image describes a disk image file to create.
type Image struct {
	// Path of the image file. An existing file at the path is overwritten.
	Path string

	// Format of the image.
	Format Format

	// Size of the image in bytes.
	Size int64

	// Tool is the image tool executable to invoke. It is resolved like a
	// QEMU executable: direct path first, then the PATH directories.
	// Defaults to [DefaultTool].
	Tool string
}

// Create invokes the image tool and blocks until it exits.
//
// A non-zero exit is reported as [ToolError] carrying the tool's captured
// standard output, falling back to its standard error output if stdout is
// empty.
func (i Image) Create(ctx context.Context) error {
	if i.Path == "" {
		return ErrPathEmpty
	}

	if !i.Format.isKnown() {
		return fmt.Errorf("%w: %q", ErrFormatInvalid, string(i.Format))
	}

	if i.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrSizeInvalid, i.Size)
	}

	tool := i.Tool
	if tool == "" {
		tool = DefaultTool
	}

	executable, err := sys.ResolveExecutable(tool)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, executable,
		"create",
		"-f", string(i.Format),
		i.Path,
		strconv.FormatInt(i.Size, 10),
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("run %s: %w", executable, err)
	}

	output := strings.TrimSpace(stdout.String())
	if output == "" {
		output = strings.TrimSpace(stderr.String())
	}

	return &ToolError{
		Output:   output,
		ExitCode: exitErr.ExitCode(),
	}
}
