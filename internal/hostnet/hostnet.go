// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

// Package hostnet provides host-side network helpers for wiring tap backed
// guest network interfaces.
package hostnet

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/vishvananda/netlink"
)

// ErrEmptyLinkName is returned if an empty link name is given.
var ErrEmptyLinkName = errors.New("link name must not be empty")

// CheckLink returns an error if the named network interface does not exist
// on the host.
func CheckLink(name string) error {
	if name == "" {
		return ErrEmptyLinkName
	}

	if _, err := netlink.LinkByName(name); err != nil {
		return fmt.Errorf("lookup link %s: %w", name, err)
	}

	return nil
}

// DeriveMAC returns a stable MAC address for the given identifier. The
// first three octets are QEMU's 52:54:00 OUI, the last three are derived
// from a hash of the identifier.
func DeriveMAC(id string) string {
	sum := sha256.Sum256([]byte(id))

	return fmt.Sprintf("52:54:00:%02x:%02x:%02x", sum[0], sum[1], sum[2])
}
