// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "os"

// KVMAvailable checks if KVM hardware acceleration is available to the
// current process.
func KVMAvailable() bool {
	f, err := os.OpenFile("/dev/kvm", os.O_WRONLY, 0)
	_ = f.Close()

	return err == nil
}
