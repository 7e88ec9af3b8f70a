// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package run implements the "fillprobe run" command: flag and config
// resolution, the multiplexer warning, and wiring the terminal
// reporter into the probe engine.
package run

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/fillprobe/fillprobe/cmd/fillprobe/cli"
	"github.com/fillprobe/fillprobe/lib/config"
	"github.com/fillprobe/fillprobe/lib/multiplex"
	"github.com/fillprobe/fillprobe/lib/probe"
	"github.com/fillprobe/fillprobe/lib/tui"
	"github.com/fillprobe/fillprobe/lib/units"
)

type runFlags struct {
	target     string
	count      int
	size       string
	quiet      bool
	verbose    bool
	progress   bool
	yes        bool
	configPath string
}

// Command returns the "run" command.
func Command() *cli.Command {
	flags := &runFlags{}
	flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flagSet.StringVarP(&flags.target, "target", "t", ".", "directory to fill (must already exist)")
	flagSet.IntVarP(&flags.count, "count", "c", 1, "number of chunks to write")
	flagSet.StringVarP(&flags.size, "size", "s", "256M", "chunk size (binary prefixes K, M, G, T, P; optional B)")
	flagSet.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress and diagnostics")
	flagSet.BoolVarP(&flags.verbose, "verbose", "v", false, "per-chunk debug logging")
	flagSet.BoolVar(&flags.progress, "progress", false, "force the progress bar on or off (default: auto-detect)")
	flagSet.BoolVarP(&flags.yes, "yes", "y", false, "skip the terminal-multiplexer warning prompt")
	flagSet.StringVar(&flags.configPath, "config", "", "config file path (default $"+config.EnvVar+")")

	return &cli.Command{
		Name:    "run",
		Summary: "fill the target directory with random chunks and verify them",
		Description: `Fill the target directory with randomly generated chunk files until the
requested count is reached or the filesystem runs out of space, then
re-read every written chunk and verify its content digest.

Running out of space is an expected outcome and reported as partial
success; a verification mismatch means the storage lost data and fails
the run.`,
		Usage: "fillprobe run [flags]",
		Flags: func() *pflag.FlagSet { return flagSet },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			return execute(flags, flagSet)
		},
	}
}

func execute(flags *runFlags, flagSet *pflag.FlagSet) error {
	var fileConfig *config.Config
	if path := config.Path(flags.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		fileConfig = loaded
		applyConfig(flags, flagSet, fileConfig)
	}

	chunkSize, err := units.ParseSize(flags.size)
	if err != nil {
		return err
	}
	if chunkSize <= 0 {
		return fmt.Errorf("chunk size %q must be positive", flags.size)
	}

	storage, err := probe.NewDirStorage(flags.target)
	if err != nil {
		return err
	}

	if multiplex.ShouldWarn(flags.yes) {
		confirmed, err := multiplex.Confirm(os.Stdin, os.Stderr,
			"no terminal multiplexer detected; a dropped session aborts the run mid-write. Continue")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, "aborted")
			return nil
		}
	}

	var reporter probe.Reporter = probe.NopReporter{}
	if progressEnabled(flags, flagSet, fileConfig) {
		reporter = tui.NewBar(os.Stderr, chunkSize)
	}

	p, err := probe.New(storage, probe.Options{
		ChunkCount: flags.count,
		ChunkSize:  chunkSize,
		Progress:   reporter,
		Logger:     newLogger(flags.quiet, flags.verbose),
	})
	if err != nil {
		return err
	}

	summary, err := p.Run()
	if err != nil {
		return err
	}

	fmt.Print(tui.RenderSummary(summary))
	return nil
}

// applyConfig fills in defaults from the config file for every flag
// the user did not set explicitly. Flags always win over the file.
func applyConfig(flags *runFlags, flagSet *pflag.FlagSet, cfg *config.Config) {
	if !flagSet.Changed("target") && cfg.Target != "" {
		flags.target = cfg.Target
	}
	if !flagSet.Changed("count") && cfg.Count != nil {
		flags.count = *cfg.Count
	}
	if !flagSet.Changed("size") && cfg.Size != "" {
		flags.size = cfg.Size
	}
	if !flagSet.Changed("quiet") && cfg.Quiet != nil {
		flags.quiet = *cfg.Quiet
	}
}

// progressEnabled decides whether to draw the bar: an explicit
// --progress wins, then the config file, then terminal auto-detection
// (quiet always disables auto-detection).
func progressEnabled(flags *runFlags, flagSet *pflag.FlagSet, cfg *config.Config) bool {
	if flagSet.Changed("progress") {
		return flags.progress
	}
	if cfg != nil && cfg.Progress != nil {
		return *cfg.Progress
	}
	return !flags.quiet && term.IsTerminal(int(os.Stderr.Fd()))
}

// newLogger builds the run logger from the verbosity flags. Verbosity
// is an explicit value handed to the handler here, not a global that
// code deeper down consults.
func newLogger(quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
