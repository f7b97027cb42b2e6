// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

// Package qemu composes and launches QEMU system virtualization commands.
// It expects the required QEMU binary to be present on the system.
//
// Typed configuration values (CPU topology, memory layout, display, video
// adapter, drives, network interfaces, direct kernel boot) are collected by
// a [Builder] and rendered into the command line argument syntax QEMU
// expects. [Builder.Start] spawns the emulator and performs a short
// delay-then-poll liveness check to distinguish a successful launch from an
// immediate failure. The returned [Process] is owned by the caller.
package qemu
