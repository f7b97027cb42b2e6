// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qemurun/qemurun/qemu"
)

func TestVGATypeMarshalText(t *testing.T) {
	text, err := qemu.VGATypeVirtio.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "virtio", string(text))

	_, err = qemu.VGAType("bogus").MarshalText()
	require.ErrorIs(t, err, qemu.ErrVGATypeInvalid)
}

func TestVGATypeUnmarshalText(t *testing.T) {
	var vga qemu.VGAType

	require.NoError(t, vga.UnmarshalText([]byte("qxl")))
	assert.Equal(t, qemu.VGATypeQXL, vga)

	require.ErrorIs(t,
		vga.UnmarshalText([]byte("bogus")),
		qemu.ErrVGATypeInvalid,
	)
}

func TestDriveMediaMarshalText(t *testing.T) {
	text, err := qemu.DriveMediaCDROM.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cdrom", string(text))

	_, err = qemu.DriveMedia("floppy").MarshalText()
	require.ErrorIs(t, err, qemu.ErrDriveMediaInvalid)
}

func TestDriveMediaUnmarshalText(t *testing.T) {
	var media qemu.DriveMedia

	require.NoError(t, media.UnmarshalText([]byte("disk")))
	assert.Equal(t, qemu.DriveMediaDisk, media)

	require.ErrorIs(t,
		media.UnmarshalText([]byte("floppy")),
		qemu.ErrDriveMediaInvalid,
	)
}
