// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import "slices"

const (
	// DriveMediaDisk is a hard disk drive.
	DriveMediaDisk DriveMedia = "disk"
	// DriveMediaCDROM is a CD-ROM drive.
	DriveMediaCDROM DriveMedia = "cdrom"
)

// DriveMedia represents the media type of a [Drive].
type DriveMedia string

func (d DriveMedia) isKnown() bool {
	knownDriveMedia := []DriveMedia{
		DriveMediaDisk,
		DriveMediaCDROM,
	}

	return slices.Contains(knownDriveMedia, d)
}

// String implements [fmt.Stringer].
func (d DriveMedia) String() string {
	if !d.isKnown() {
		return ""
	}

	return string(d)
}

// MarshalText implements [encoding.TextMarshaler].
func (d DriveMedia) MarshalText() ([]byte, error) {
	s := d.String()
	if s == "" {
		return nil, ErrDriveMediaInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *DriveMedia) UnmarshalText(text []byte) error {
	dm := DriveMedia(text)

	if !dm.isKnown() {
		return ErrDriveMediaInvalid
	}

	*d = dm

	return nil
}

// Drive represents a drive attached to the emulated machine. Drives are
// backed by an image file.
type Drive struct {
	media DriveMedia
	file  string
}

// NewDrive creates a new drive with the given media type backed by the
// image file at the given path.
func NewDrive(media DriveMedia, file string) Drive {
	return Drive{
		media: media,
		file:  file,
	}
}

func (d Drive) arguments() ([]Argument, error) {
	if d.file == "" {
		return nil, &ArgumentError{"drive file must not be empty"}
	}

	if !d.media.isKnown() {
		return nil, &ArgumentError{"unknown drive media: " + string(d.media)}
	}

	arg := RepeatableArg("drive",
		"file="+d.file,
		"media="+string(d.media),
	)

	return []Argument{arg}, nil
}
