// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

// Package qemuimg wraps the external qemu-img tool for creating disk image
// files. The tool is invoked synchronously; there is no timeout beyond the
// passed context.
package qemuimg
