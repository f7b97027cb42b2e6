// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"syscall"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/qemurun/qemurun/internal/hostnet"
	"github.com/qemurun/qemurun/internal/sys"
	"github.com/qemurun/qemurun/qemu"
)

type runFlags struct {
	qemuBin string

	smp     uint64
	cores   uint64
	threads uint64
	sockets uint64
	maxCPUs uint64

	memory      string
	memorySlots uint64
	maxMemory   string

	display      string
	vncHost      string
	vncDisplay   uint16
	vncWebsocket uint16
	vncPassword  bool

	vga string

	drives []string
	cdroms []string

	tap string
	mac string

	kernel  string
	initrd  string
	cmdline string

	noKVM        bool
	startupDelay time.Duration
	detach       bool
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch a QEMU virtual machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVM(cmd, flags)
		},
	}

	fs := cmd.Flags()

	fs.StringVar(&flags.qemuBin, "qemu", "qemu-system-x86_64",
		"QEMU executable name or path")

	fs.Uint64Var(&flags.smp, "smp", 0, "number of guest CPUs")
	fs.Uint64Var(&flags.cores, "cores", 0, "number of CPU cores per socket")
	fs.Uint64Var(&flags.threads, "threads", 0, "number of threads per core")
	fs.Uint64Var(&flags.sockets, "sockets", 0, "number of CPU sockets")
	fs.Uint64Var(&flags.maxCPUs, "maxcpus", 0,
		"maximum number of hotpluggable CPUs")

	fs.StringVar(&flags.memory, "memory", "512M", "guest startup RAM size")
	fs.Uint64Var(&flags.memorySlots, "memory-slots", 0,
		"number of hotpluggable memory slots")
	fs.StringVar(&flags.maxMemory, "max-memory", "",
		"maximum guest RAM size with hotplug")

	fs.StringVar(&flags.display, "display", "none",
		"display mode (none, sdl, vnc)")
	fs.StringVar(&flags.vncHost, "vnc-host", "localhost",
		"VNC host to listen on")
	fs.Uint16Var(&flags.vncDisplay, "vnc-display", 0, "VNC display number")
	fs.Uint16Var(&flags.vncWebsocket, "vnc-websocket", 0,
		"additional VNC websocket port")
	fs.BoolVar(&flags.vncPassword, "vnc-password", false,
		"require a VNC password")

	fs.StringVar(&flags.vga, "vga", "", "VGA card type to emulate")

	fs.StringArrayVar(&flags.drives, "drive", nil,
		"disk image file to attach, can be given multiple times")
	fs.StringArrayVar(&flags.cdroms, "cdrom", nil,
		"CD-ROM image file to attach, can be given multiple times")

	fs.StringVar(&flags.tap, "tap", "",
		"host tap device for a virtio-net interface")
	fs.StringVar(&flags.mac, "mac", "",
		"MAC address for the network interface, derived if empty")

	fs.StringVar(&flags.kernel, "kernel", "", "kernel image for direct boot")
	fs.StringVar(&flags.initrd, "initrd", "",
		"initramfs archive for direct boot")
	fs.StringVar(&flags.cmdline, "cmdline", "", "kernel command line")

	fs.BoolVar(&flags.noKVM, "no-kvm", false,
		"disable KVM hardware acceleration")
	fs.DurationVar(&flags.startupDelay, "startup-delay",
		qemu.DefaultStartupDelay,
		"duration to wait before the launch liveness check")
	fs.BoolVar(&flags.detach, "detach", false,
		"exit after launch instead of waiting for the VM")

	return cmd
}

func runVM(cmd *cobra.Command, flags *runFlags) error {
	builder, err := newBuilder(flags)
	if err != nil {
		return err
	}

	slog.Debug("Launching QEMU",
		slog.String("executable", builder.Executable()))

	process, err := builder.Start(cmd.Context())
	if err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "started %s (pid %d)\n",
		builder.Executable(), process.Pid())

	if flags.detach {
		return nil
	}

	go func() {
		<-cmd.Context().Done()
		_ = process.Signal(syscall.SIGTERM)
	}()

	exitCode, err := process.Wait()
	if err != nil {
		return fmt.Errorf("qemu: %w", err)
	}

	if exitCode != 0 {
		return fmt.Errorf("qemu exited with code %d", exitCode)
	}

	return nil
}

//nolint:cyclop
func newBuilder(flags *runFlags) (*qemu.Builder, error) {
	builder, err := qemu.New(flags.qemuBin)
	if err != nil {
		return nil, err
	}

	builder.WithStartupDelay(flags.startupDelay)

	if !flags.noKVM && qemu.KVMAvailable() {
		builder.EnableKVM()
	}

	processors, err := processorsFor(flags)
	if err != nil {
		return nil, err
	}

	if processors != nil {
		builder.With(*processors)
	}

	memory, err := memoryFor(flags)
	if err != nil {
		return nil, err
	}

	builder.With(memory)

	display, err := displayFor(flags)
	if err != nil {
		return nil, err
	}

	builder.With(display)

	if flags.vga != "" {
		var vga qemu.VGAType
		if err := vga.UnmarshalText([]byte(flags.vga)); err != nil {
			return nil, fmt.Errorf("%w: %q", err, flags.vga)
		}

		builder.With(vga)
	}

	if err := addDrives(builder, flags); err != nil {
		return nil, err
	}

	if flags.tap != "" {
		builder.With(tapInterfaceFor(flags))
	}

	if err := addKernel(builder, flags); err != nil {
		return nil, err
	}

	return builder, nil
}

func processorsFor(flags *runFlags) (*qemu.Processors, error) {
	var processors qemu.Processors

	switch {
	case flags.smp != 0:
		processors = qemu.NewProcessors(flags.smp)
	case flags.cores != 0 || flags.threads != 0 || flags.sockets != 0:
		var err error

		processors, err = qemu.NewProcessorTopology(
			flags.cores,
			flags.threads,
			flags.sockets,
		)
		if err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	if flags.maxCPUs != 0 {
		processors = processors.WithMaxCPUs(flags.maxCPUs)
	}

	return &processors, nil
}

func memoryFor(flags *runFlags) (qemu.Memory, error) {
	size, err := parseSizeMiB(flags.memory)
	if err != nil {
		return qemu.Memory{}, err
	}

	if flags.memorySlots == 0 && flags.maxMemory == "" {
		return qemu.NewMemory(size), nil
	}

	maxSize, err := parseSizeMiB(flags.maxMemory)
	if err != nil {
		return qemu.Memory{}, err
	}

	return qemu.NewHotpluggableMemory(size, flags.memorySlots, maxSize), nil
}

func displayFor(flags *runFlags) (qemu.Display, error) {
	switch flags.display {
	case "none":
		return qemu.DisplayNone(), nil
	case "sdl":
		return qemu.DisplaySDL(), nil
	case "vnc":
		return qemu.DisplayVNC(qemu.VNC{
			Host:          flags.vncHost,
			Display:       flags.vncDisplay,
			WebsocketPort: flags.vncWebsocket,
			Password:      flags.vncPassword,
		}), nil
	default:
		return qemu.Display{},
			fmt.Errorf("unknown display mode: %q", flags.display)
	}
}

func addDrives(builder *qemu.Builder, flags *runFlags) error {
	add := func(media qemu.DriveMedia, file string) error {
		path, err := sys.AbsoluteFilePath(file)
		if err != nil {
			return err
		}

		if err := path.Check(); err != nil {
			return fmt.Errorf("drive %s: %w", file, err)
		}

		builder.With(qemu.NewDrive(media, string(path)))

		return nil
	}

	for _, file := range flags.drives {
		if err := add(qemu.DriveMediaDisk, file); err != nil {
			return err
		}
	}

	for _, file := range flags.cdroms {
		if err := add(qemu.DriveMediaCDROM, file); err != nil {
			return err
		}
	}

	return nil
}

func tapInterfaceFor(flags *runFlags) qemu.NetworkInterface {
	netIf := qemu.NewTapInterface(flags.tap)

	if err := hostnet.CheckLink(flags.tap); err != nil {
		// QEMU may still be able to create the tap device itself.
		slog.Warn("Host tap device not found",
			slog.String("ifname", flags.tap),
			slog.Any("error", err))
	}

	mac := flags.mac
	if mac == "" {
		mac = hostnet.DeriveMAC(netIf.ID())

		slog.Debug("Derived MAC address",
			slog.String("id", netIf.ID()),
			slog.String("mac", mac))
	}

	return netIf.WithMAC(mac)
}

func addKernel(builder *qemu.Builder, flags *runFlags) error {
	if flags.kernel == "" {
		if flags.initrd != "" {
			return fmt.Errorf("initrd requires a kernel")
		}

		return nil
	}

	kernel := qemu.NewKernel(flags.kernel)

	if flags.initrd != "" {
		kernel = kernel.WithInitrd(flags.initrd)
	}

	if flags.cmdline != "" {
		kernel = kernel.WithCmdline(strings.Fields(flags.cmdline)...)
	}

	builder.With(kernel)

	return nil
}

// parseSizeMiB parses a human readable size like "512M" or "4G" into MiB.
func parseSizeMiB(size string) (uint64, error) {
	sizeBytes, err := units.RAMInBytes(size)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", size, err)
	}

	sizeMiB := sizeBytes >> 20
	if sizeMiB <= 0 {
		return 0, fmt.Errorf("size must be at least 1M: %q", size)
	}

	return uint64(sizeMiB), nil
}
