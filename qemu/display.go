// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"fmt"
	"strconv"
)

type displayMode int

const (
	displayModeNone displayMode = iota
	displayModeSDL
	displayModeVNC
)

// VNC describes a VNC display server configuration.
type VNC struct {
	// Host to listen on.
	Host string

	// VNC display number. The listening TCP port is 5900 plus this number.
	Display uint16

	// Additional websocket port. Zero means no websocket support.
	WebsocketPort uint16

	// Require a password. The password itself must be set separately via
	// the QEMU monitor.
	Password bool
}

// Display represents the display output settings of the emulated machine.
//
// The zero value renders as disabled display output.
type Display struct {
	mode displayMode
	vnc  VNC
}

// DisplayNone disables display output.
func DisplayNone() Display {
	return Display{mode: displayModeNone}
}

// DisplaySDL displays video output in an SDL window.
func DisplaySDL() Display {
	return Display{mode: displayModeSDL}
}

// DisplayVNC exposes video output via the given VNC server configuration.
func DisplayVNC(vnc VNC) Display {
	return Display{
		mode: displayModeVNC,
		vnc:  vnc,
	}
}

func (d Display) arguments() ([]Argument, error) {
	var value string

	switch d.mode {
	case displayModeNone:
		value = "none"
	case displayModeSDL:
		value = "sdl"
	case displayModeVNC:
		if d.vnc.Host == "" {
			return nil, &ArgumentError{"vnc host must not be empty"}
		}

		value = fmt.Sprintf("vnc=%s:%d", d.vnc.Host, d.vnc.Display)

		if d.vnc.WebsocketPort != 0 {
			value += ",websocket=" +
				strconv.FormatUint(uint64(d.vnc.WebsocketPort), 10)
		}

		if d.vnc.Password {
			value += ",password"
		}
	}

	return []Argument{UniqueArg("display", value)}, nil
}
