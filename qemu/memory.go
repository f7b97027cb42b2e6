// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "strconv"

// Memory represents the memory size and layout of the emulated machine.
// All sizes are in MiB.
type Memory struct {
	size    uint64
	slots   uint64
	maxSize uint64
	hotplug bool
}

// NewMemory defines a basic memory layout with the given amount of startup
// RAM. Memory hotplug will not be available.
func NewMemory(size uint64) Memory {
	return Memory{
		size: size,
	}
}

// NewHotpluggableMemory defines a memory layout that supports memory
// hotplug with the given amount of startup RAM, the given number of
// hotpluggable memory slots, and the maximum amount of RAM the guest will
// be able to handle.
func NewHotpluggableMemory(size, slots, maxSize uint64) Memory {
	return Memory{
		size:    size,
		slots:   slots,
		maxSize: maxSize,
		hotplug: true,
	}
}

func (m Memory) arguments() ([]Argument, error) {
	if m.size == 0 {
		return nil, &ArgumentError{"memory size must be greater than zero"}
	}

	opts := []string{"size=" + strconv.FormatUint(m.size, 10)}

	// Slots and maximum size are all-or-nothing. Either both render or the
	// layout is not hotpluggable.
	if m.hotplug {
		if m.slots == 0 {
			return nil, &ArgumentError{
				"memory slots must be greater than zero",
			}
		}

		if m.maxSize == 0 {
			return nil, &ArgumentError{
				"maximum memory must be greater than zero",
			}
		}

		opts = append(opts,
			"slots="+strconv.FormatUint(m.slots, 10),
			"maxmem="+strconv.FormatUint(m.maxSize, 10),
		)
	}

	return []Argument{UniqueArg("m", opts...)}, nil
}
