// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qemurun/qemurun/initrd"
)

const initrdFilesDir = "files"

func newInitrdCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "initrd <init> [files...]",
		Short: "Build an initramfs cpio archive for direct kernel boot",
		Long: "Build an initramfs cpio archive with the given init binary " +
			"at /init and any additional files under /" + initrdFilesDir +
			". The init binary must be statically linked.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			err := buildInitrd(output, args[0], args[1:])
			if err != nil {
				_ = os.Remove(output)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output archive file")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func buildInitrd(output, init string, files []string) error {
	outFile, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	archive := initrd.New(outFile)

	err = fillInitrd(archive, init, files)
	if err != nil {
		return errors.Join(err, outFile.Close())
	}

	return errors.Join(archive.Close(), outFile.Close())
}

func fillInitrd(archive *initrd.Archive, init string, files []string) error {
	if err := archive.AddInit(init); err != nil {
		return fmt.Errorf("add init: %w", err)
	}

	if len(files) == 0 {
		return nil
	}

	if err := archive.AddDirectory(initrdFilesDir); err != nil {
		return err
	}

	for _, file := range files {
		if err := archive.AddFile(file, initrdFilesDir); err != nil {
			return fmt.Errorf("add file: %w", err)
		}
	}

	return nil
}
