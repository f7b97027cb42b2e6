// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

// Config is a single typed piece of QEMU configuration that renders into
// command line [Argument]s.
//
// The set of implementations is closed: [Processors], [Memory], [Display],
// [VGAType], [Drive], [NetworkInterface] and [Kernel]. Rendering happens
// when [Builder.Start] or [Builder.Args] is called and is the point where
// semantic value guards are checked.
type Config interface {
	arguments() ([]Argument, error)
}
