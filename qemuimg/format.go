// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemuimg

import "slices"

const (
	// FormatRaw is the plain raw disk image format.
	FormatRaw Format = "raw"
	// FormatCloop is the compressed loop image format.
	FormatCloop Format = "cloop"
	// FormatCow is the legacy copy-on-write image format.
	FormatCow Format = "cow"
	// FormatQCow is the old QEMU copy-on-write image format.
	FormatQCow Format = "qcow"
	// FormatQCow2 is the current QEMU copy-on-write image format.
	FormatQCow2 Format = "qcow2"
	// FormatVMDK is the VMware image format.
	FormatVMDK Format = "vmdk"
	// FormatVDI is the VirtualBox image format.
	FormatVDI Format = "vdi"
	// FormatVHDX is the Hyper-V image format.
	FormatVHDX Format = "vhdx"
	// FormatVPC is the VirtualPC image format.
	FormatVPC Format = "vpc"
)

// Format represents a disk image format supported by the image tool.
type Format string

func (f Format) isKnown() bool {
	knownFormats := []Format{
		FormatRaw,
		FormatCloop,
		FormatCow,
		FormatQCow,
		FormatQCow2,
		FormatVMDK,
		FormatVDI,
		FormatVHDX,
		FormatVPC,
	}

	return slices.Contains(knownFormats, f)
}

// String implements [fmt.Stringer].
func (f Format) String() string {
	if !f.isKnown() {
		return ""
	}

	return string(f)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	s := f.String()
	if s == "" {
		return nil, ErrFormatInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	format := Format(text)

	if !format.isKnown() {
		return ErrFormatInvalid
	}

	*f = format

	return nil
}
