// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the fillprobe CLI command tree.
package commands

import (
	"fmt"

	"github.com/fillprobe/fillprobe/cmd/fillprobe/cli"
	runcmd "github.com/fillprobe/fillprobe/cmd/fillprobe/run"
	"github.com/fillprobe/fillprobe/lib/version"
)

// Root returns the complete command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "fillprobe",
		Description: `fillprobe: disk-space exhaustion probe.

Fill a directory with random chunk files until the filesystem refuses
further writes, then re-read and cryptographically verify everything
that was written. Catches devices and filesystems that accept data
they cannot actually hold.`,
		Subcommands: []*cli.Command{
			runcmd.Command(),
			versionCommand(),
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "print build version information",
		Run: func(args []string) error {
			fmt.Println("fillprobe " + version.Full())
			return nil
		},
	}
}
