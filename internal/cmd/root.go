// SPDX-FileCopyrightText: 2026 The qemurun authors
//
// SPDX-License-Identifier: MIT

// Package cmd implements the qemurun command line interface.
package cmd

import "github.com/spf13/cobra"

// New creates the qemurun root command.
func New() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "qemurun",
		Short:         "Configure and launch QEMU virtual machines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
		},
	}

	root.PersistentFlags().BoolVar(
		&debug,
		"debug",
		false,
		"enable debug logging",
	)

	root.AddCommand(
		newRunCommand(),
		newImgCommand(),
		newInitrdCommand(),
	)

	return root
}
