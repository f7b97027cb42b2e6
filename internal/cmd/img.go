// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/qemurun/qemurun/qemuimg"
)

func newImgCommand() *cobra.Command {
	img := &cobra.Command{
		Use:   "img",
		Short: "Disk image operations",
	}

	var (
		formatFlag string
		sizeFlag   string
		toolFlag   string
	)

	create := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a disk image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format qemuimg.Format
			if err := format.UnmarshalText([]byte(formatFlag)); err != nil {
				return fmt.Errorf("%w: %q", err, formatFlag)
			}

			size, err := units.RAMInBytes(sizeFlag)
			if err != nil {
				return fmt.Errorf("parse size %q: %w", sizeFlag, err)
			}

			image := qemuimg.Image{
				Path:   args[0],
				Format: format,
				Size:   size,
				Tool:   toolFlag,
			}

			if err := image.Create(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s, %d bytes)\n",
				image.Path, image.Format, image.Size)

			return nil
		},
	}

	create.Flags().StringVarP(&formatFlag, "format", "f", "qcow2",
		"image format")
	create.Flags().StringVarP(&sizeFlag, "size", "s", "",
		"image size (e.g. 10G)")
	create.Flags().StringVar(&toolFlag, "tool", "",
		"image tool executable (default "+qemuimg.DefaultTool+")")

	_ = create.MarkFlagRequired("size")

	img.AddCommand(create)

	return img
}
