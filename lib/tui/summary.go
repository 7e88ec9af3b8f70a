// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/fillprobe/fillprobe/lib/probe"
	"github.com/fillprobe/fillprobe/lib/units"
)

var (
	fullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// RenderSummary formats the final run summary. A summary only exists
// for runs where every written chunk verified, so the two possible
// statuses are full success and partial success (storage filled up
// before the requested count).
func RenderSummary(s *probe.Summary) string {
	var out strings.Builder

	fmt.Fprintf(&out, "chunks written   %d/%d (%s of %s)\n",
		s.Written, s.Requested,
		humanize.IBytes(uint64(s.BytesWritten)),
		humanize.IBytes(uint64(s.Requested)*uint64(s.ChunkSize)))
	fmt.Fprintf(&out, "chunks verified  %d/%d (%s)\n",
		s.Verified, s.Written,
		humanize.IBytes(uint64(s.BytesVerified)))
	fmt.Fprintf(&out, "chunk size       %s\n", units.FormatSize(s.ChunkSize))

	if s.Complete() {
		fmt.Fprintf(&out, "%s\n", fullStyle.Render("OK: all requested chunks written and verified"))
	} else {
		fmt.Fprintf(&out, "%s\n", partialStyle.Render(fmt.Sprintf(
			"OK (partial): storage exhausted after %d of %d chunks, all written chunks verified",
			s.Written, s.Requested)))
	}

	return out.String()
}
