// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package multiplex decides whether a probe run needs the "you are not
// inside a terminal multiplexer" warning. Filling a disk can take
// hours; a dropped SSH connection kills the run with partially written
// files left behind, so the CLI asks for confirmation unless the
// session is protected by tmux or GNU screen (or the user suppressed
// the prompt).
package multiplex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Inside reports whether the process appears to run inside a terminal
// multiplexer. tmux exports TMUX and GNU screen exports STY; either
// signal counts.
func Inside() bool {
	return os.Getenv("TMUX") != "" || os.Getenv("STY") != ""
}

// ShouldWarn reports whether the CLI should prompt before writing:
// the warning is not suppressed, no multiplexer is detected, and stdin
// is an interactive terminal (a pipe cannot answer a prompt, and a
// scripted run should not hang on one).
func ShouldWarn(suppressed bool) bool {
	if suppressed || Inside() {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm writes the question to out and reads a single y/N answer
// from in. Only "y" and "yes" (any case) confirm; everything else,
// including end of input, declines.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
