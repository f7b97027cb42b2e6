// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package qemu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorsArguments(t *testing.T) {
	tests := []struct {
		name        string
		processors  Processors
		expected    []Argument
		expectedErr error
	}{
		{
			name:       "flat count",
			processors: NewProcessors(4),
			expected:   []Argument{UniqueArg("smp", "cpus=4")},
		},
		{
			name:       "flat count with maxcpus",
			processors: NewProcessors(1).WithMaxCPUs(255),
			expected:   []Argument{UniqueArg("smp", "cpus=1", "maxcpus=255")},
		},
		{
			name:        "flat count zero",
			processors:  NewProcessors(0),
			expectedErr: &ArgumentError{},
		},
		{
			name:        "zero value",
			processors:  Processors{},
			expectedErr: &ConfigError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.processors.arguments()

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestProcessorTopologyArguments(t *testing.T) {
	tests := []struct {
		name     string
		cores    uint64
		threads  uint64
		sockets  uint64
		maxCPUs  uint64
		expected string
	}{
		{
			name:     "all fields",
			cores:    4,
			threads:  2,
			sockets:  1,
			expected: "cores=4,threads=2,sockets=1",
		},
		{
			name:     "cores only",
			cores:    8,
			expected: "cores=8",
		},
		{
			name:     "threads and maxcpus",
			threads:  2,
			maxCPUs:  16,
			expected: "threads=2,maxcpus=16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processors, err := NewProcessorTopology(
				tt.cores,
				tt.threads,
				tt.sockets,
			)
			require.NoError(t, err)

			if tt.maxCPUs != 0 {
				processors = processors.WithMaxCPUs(tt.maxCPUs)
			}

			actual, err := processors.arguments()
			require.NoError(t, err)
			assert.Equal(t, []Argument{UniqueArg("smp", tt.expected)}, actual)
		})
	}
}

func TestProcessorTopologyEmpty(t *testing.T) {
	_, err := NewProcessorTopology(0, 0, 0)
	require.ErrorIs(t, err, &ConfigError{})
}

func TestMemoryArguments(t *testing.T) {
	tests := []struct {
		name        string
		memory      Memory
		expected    []Argument
		expectedErr error
	}{
		{
			name:     "basic",
			memory:   NewMemory(512),
			expected: []Argument{UniqueArg("m", "size=512")},
		},
		{
			name:   "hotpluggable",
			memory: NewHotpluggableMemory(1024, 3, 4096),
			expected: []Argument{
				UniqueArg("m", "size=1024", "slots=3", "maxmem=4096"),
			},
		},
		{
			name:        "zero size",
			memory:      NewMemory(0),
			expectedErr: &ArgumentError{},
		},
		{
			name:        "hotpluggable zero slots",
			memory:      NewHotpluggableMemory(1024, 0, 4096),
			expectedErr: &ArgumentError{},
		},
		{
			name:        "hotpluggable zero maxmem",
			memory:      NewHotpluggableMemory(1024, 3, 0),
			expectedErr: &ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.memory.arguments()

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestDisplayArguments(t *testing.T) {
	tests := []struct {
		name        string
		display     Display
		expected    string
		expectedErr error
	}{
		{
			name:     "zero value",
			display:  Display{},
			expected: "none",
		},
		{
			name:     "none",
			display:  DisplayNone(),
			expected: "none",
		},
		{
			name:     "sdl",
			display:  DisplaySDL(),
			expected: "sdl",
		},
		{
			name: "vnc",
			display: DisplayVNC(VNC{
				Host:    "localhost",
				Display: 1,
			}),
			expected: "vnc=localhost:1",
		},
		{
			name: "vnc with websocket",
			display: DisplayVNC(VNC{
				Host:          "0.0.0.0",
				Display:       2,
				WebsocketPort: 5700,
			}),
			expected: "vnc=0.0.0.0:2,websocket=5700",
		},
		{
			name: "vnc with websocket and password",
			display: DisplayVNC(VNC{
				Host:          "localhost",
				Display:       0,
				WebsocketPort: 5701,
				Password:      true,
			}),
			expected: "vnc=localhost:0,websocket=5701,password",
		},
		{
			name:        "vnc without host",
			display:     DisplayVNC(VNC{Display: 1}),
			expectedErr: &ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.display.arguments()

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, []Argument{UniqueArg("display", tt.expected)}, actual)
		})
	}
}

func TestVGATypeArguments(t *testing.T) {
	expected := map[VGAType]string{
		VGATypeNone:   "none",
		VGATypeCirrus: "cirrus",
		VGATypeStd:    "std",
		VGATypeVMware: "vmware",
		VGATypeQXL:    "qxl",
		VGATypeTCX:    "tcx",
		VGATypeCG3:    "cg3",
		VGATypeVirtio: "virtio",
	}

	for vga, keyword := range expected {
		actual, err := vga.arguments()
		require.NoError(t, err)
		assert.Equal(t, []Argument{UniqueArg("vga", keyword)}, actual)
	}

	_, err := VGAType("bogus").arguments()
	require.ErrorIs(t, err, &ArgumentError{})
}

func TestDriveArguments(t *testing.T) {
	tests := []struct {
		name        string
		drive       Drive
		expected    string
		expectedErr error
	}{
		{
			name:     "disk",
			drive:    NewDrive(DriveMediaDisk, "/images/root.qcow2"),
			expected: "file=/images/root.qcow2,media=disk",
		},
		{
			name:     "cdrom",
			drive:    NewDrive(DriveMediaCDROM, "/images/install.iso"),
			expected: "file=/images/install.iso,media=cdrom",
		},
		{
			name:        "empty file",
			drive:       NewDrive(DriveMediaDisk, ""),
			expectedErr: &ArgumentError{},
		},
		{
			name:        "unknown media",
			drive:       NewDrive(DriveMedia("floppy"), "/images/a.img"),
			expectedErr: &ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.drive.arguments()

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, []Argument{RepeatableArg("drive", tt.expected)}, actual)
		})
	}
}

func TestNetworkInterfaceArguments(t *testing.T) {
	t.Run("with mac", func(t *testing.T) {
		netIf := NewTapInterface("tap0").
			WithID("net0").
			WithMAC("52:54:00:12:34:56")

		actual, err := netIf.arguments()
		require.NoError(t, err)

		expected := []Argument{
			RepeatableArg("netdev", "tap", "id=net0", "ifname=tap0"),
			RepeatableArg("device", "virtio-net", "netdev=net0",
				"mac=52:54:00:12:34:56"),
		}
		assert.Equal(t, expected, actual)
	})

	t.Run("generated id", func(t *testing.T) {
		netIf := NewTapInterface("tap1")
		require.NotEmpty(t, netIf.ID())

		actual, err := netIf.arguments()
		require.NoError(t, err)
		require.Len(t, actual, 2)
		assert.Contains(t, actual[0].Value(), "id="+netIf.ID())
		assert.Contains(t, actual[1].Value(), "netdev="+netIf.ID())
	})

	t.Run("empty ifname", func(t *testing.T) {
		_, err := NewTapInterface("").arguments()
		require.ErrorIs(t, err, &ArgumentError{})
	})

	t.Run("invalid mac", func(t *testing.T) {
		_, err := NewTapInterface("tap0").WithMAC("not-a-mac").arguments()
		require.ErrorIs(t, err, &ArgumentError{})
	})
}

func TestKernelArguments(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		kernel := NewKernel("/boot/vmlinuz").
			WithInitrd("/boot/initrd.cpio").
			WithCmdline("console=ttyS0", "panic=-1")

		actual, err := kernel.arguments()
		require.NoError(t, err)

		expected := []Argument{
			UniqueArg("kernel", "/boot/vmlinuz"),
			UniqueArg("initrd", "/boot/initrd.cpio"),
			UniqueArg("append", "console=ttyS0 panic=-1"),
		}
		assert.Equal(t, expected, actual)
	})

	t.Run("kernel only", func(t *testing.T) {
		actual, err := NewKernel("/boot/vmlinuz").arguments()
		require.NoError(t, err)
		assert.Equal(t, []Argument{UniqueArg("kernel", "/boot/vmlinuz")}, actual)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewKernel("").arguments()
		require.ErrorIs(t, err, &ArgumentError{})
	})
}
