// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "strings"

// Kernel represents a direct kernel boot configuration.
type Kernel struct {
	kernel  string
	initrd  string
	cmdline []string
}

// NewKernel creates a direct kernel boot configuration for the kernel image
// at the given path.
func NewKernel(path string) Kernel {
	return Kernel{
		kernel: path,
	}
}

// WithInitrd sets the initial ram disk to boot with. See the initrd package
// for building one.
func (k Kernel) WithInitrd(path string) Kernel {
	k.initrd = path
	return k
}

// WithCmdline sets the kernel command line arguments.
func (k Kernel) WithCmdline(args ...string) Kernel {
	k.cmdline = args
	return k
}

func (k Kernel) arguments() ([]Argument, error) {
	if k.kernel == "" {
		return nil, &ArgumentError{"kernel path must not be empty"}
	}

	args := []Argument{UniqueArg("kernel", k.kernel)}

	if k.initrd != "" {
		args = append(args, UniqueArg("initrd", k.initrd))
	}

	if len(k.cmdline) > 0 {
		args = append(args, UniqueArg("append", strings.Join(k.cmdline, " ")))
	}

	return args, nil
}
