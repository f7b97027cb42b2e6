// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "strconv"

// Processors represents the CPU settings of the emulated SMP system.
//
// It is defined either by a flat CPU count or by a topology of cores,
// threads and sockets. Both representations can carry an optional maximum
// CPU hint for hotplug.
type Processors struct {
	cpus    uint64
	flat    bool
	cores   uint64
	threads uint64
	sockets uint64
	maxCPUs uint64
}

// NewProcessors defines a system with the given number of CPUs.
func NewProcessors(cpus uint64) Processors {
	return Processors{
		cpus: cpus,
		flat: true,
	}
}

// NewProcessorTopology defines a system by its number of CPU cores, threads
// and sockets. Fields left zero are omitted and computed by QEMU. At least
// one of the three must be set.
func NewProcessorTopology(cores, threads, sockets uint64) (Processors, error) {
	if cores == 0 && threads == 0 && sockets == 0 {
		return Processors{}, &ConfigError{
			"cpu cores, threads, or sockets must be defined",
		}
	}

	return Processors{
		cores:   cores,
		threads: threads,
		sockets: sockets,
	}, nil
}

// WithMaxCPUs sets the maximum number of hotpluggable CPUs.
//
// The value is rendered verbatim. Whether it may be lower than the baseline
// CPU count is left to QEMU to decide.
func (p Processors) WithMaxCPUs(maxCPUs uint64) Processors {
	p.maxCPUs = maxCPUs
	return p
}

func (p Processors) arguments() ([]Argument, error) {
	opts := make([]string, 0, 4)

	if p.flat {
		if p.cpus == 0 {
			return nil, &ArgumentError{"cpu count must be greater than zero"}
		}

		opts = append(opts, "cpus="+strconv.FormatUint(p.cpus, 10))
	} else {
		if p.cores != 0 {
			opts = append(opts, "cores="+strconv.FormatUint(p.cores, 10))
		}

		if p.threads != 0 {
			opts = append(opts, "threads="+strconv.FormatUint(p.threads, 10))
		}

		if p.sockets != 0 {
			opts = append(opts, "sockets="+strconv.FormatUint(p.sockets, 10))
		}

		if len(opts) == 0 {
			return nil, &ConfigError{
				"cpu cores, threads, or sockets must be defined",
			}
		}
	}

	if p.maxCPUs != 0 {
		opts = append(opts, "maxcpus="+strconv.FormatUint(p.maxCPUs, 10))
	}

	return []Argument{UniqueArg("smp", opts...)}, nil
}
