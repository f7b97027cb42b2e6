// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"net"

	"github.com/google/uuid"
)

// NetworkInterface represents a virtio-net device backed by a host tap
// device.
type NetworkInterface struct {
	id     string
	ifname string
	mac    string
}

// NewTapInterface creates a new network interface backed by the host tap
// device with the given name. A netdev ID is generated; use
// [NetworkInterface.WithID] to set a specific one.
func NewTapInterface(ifname string) NetworkInterface {
	return NetworkInterface{
		id:     "net-" + uuid.NewString()[:8],
		ifname: ifname,
	}
}

// WithID sets the netdev ID linking the host backend to the guest device.
func (n NetworkInterface) WithID(id string) NetworkInterface {
	n.id = id
	return n
}

// WithMAC sets the MAC address of the guest device.
func (n NetworkInterface) WithMAC(mac string) NetworkInterface {
	n.mac = mac
	return n
}

// ID returns the netdev ID of the interface.
func (n NetworkInterface) ID() string {
	return n.id
}

func (n NetworkInterface) arguments() ([]Argument, error) {
	if n.ifname == "" {
		return nil, &ArgumentError{"tap interface name must not be empty"}
	}

	if n.id == "" {
		return nil, &ArgumentError{"netdev id must not be empty"}
	}

	deviceOpts := []string{
		"virtio-net",
		"netdev=" + n.id,
	}

	if n.mac != "" {
		if _, err := net.ParseMAC(n.mac); err != nil {
			return nil, &ArgumentError{"invalid mac address: " + n.mac}
		}

		deviceOpts = append(deviceOpts, "mac="+n.mac)
	}

	args := []Argument{
		RepeatableArg("netdev", "tap", "id="+n.id, "ifname="+n.ifname),
		RepeatableArg("device", deviceOpts...),
	}

	return args, nil
}
