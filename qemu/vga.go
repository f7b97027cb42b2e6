// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "slices"

const (
	// VGATypeNone disables VGA card emulation.
	VGATypeNone VGAType = "none"
	// VGATypeCirrus is the Cirrus Logic GD5446 video card.
	VGATypeCirrus VGAType = "cirrus"
	// VGATypeStd is the standard VGA card with Bochs VBE extensions.
	VGATypeStd VGAType = "std"
	// VGATypeVMware is the VMware SVGA-II compatible adapter.
	VGATypeVMware VGAType = "vmware"
	// VGATypeQXL is the QXL paravirtual graphic card.
	VGATypeQXL VGAType = "qxl"
	// VGATypeTCX is the sun4m TCX framebuffer.
	VGATypeTCX VGAType = "tcx"
	// VGATypeCG3 is the sun4m cgthree framebuffer.
	VGATypeCG3 VGAType = "cg3"
	// VGATypeVirtio is the Virtio VGA card.
	VGATypeVirtio VGAType = "virtio"
)

// VGAType represents the type of VGA card QEMU emulates.
type VGAType string

func (v VGAType) isKnown() bool {
	knownVGATypes := []VGAType{
		VGATypeNone,
		VGATypeCirrus,
		VGATypeStd,
		VGATypeVMware,
		VGATypeQXL,
		VGATypeTCX,
		VGATypeCG3,
		VGATypeVirtio,
	}

	return slices.Contains(knownVGATypes, v)
}

// String implements [fmt.Stringer].
func (v VGAType) String() string {
	if !v.isKnown() {
		return ""
	}

	return string(v)
}

// MarshalText implements [encoding.TextMarshaler].
func (v VGAType) MarshalText() ([]byte, error) {
	s := v.String()
	if s == "" {
		return nil, ErrVGATypeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *VGAType) UnmarshalText(text []byte) error {
	vt := VGAType(text)

	if !vt.isKnown() {
		return ErrVGATypeInvalid
	}

	*v = vt

	return nil
}

func (v VGAType) arguments() ([]Argument, error) {
	if !v.isKnown() {
		return nil, &ArgumentError{"unknown vga type: " + string(v)}
	}

	return []Argument{UniqueArg("vga", string(v))}, nil
}
