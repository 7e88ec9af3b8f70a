// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui renders probe progress and the run summary for an
// interactive terminal. The core engine never imports this package; it
// talks to a [probe.Reporter], and this package supplies the terminal
// implementation.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/fillprobe/fillprobe/lib/probe"
)

// barWidth is the character width of the bar itself, excluding the
// phase label and counters.
const barWidth = 30

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Bar draws a single-line progress bar, redrawn in place per chunk.
// It implements [probe.Reporter]. The probe is strictly sequential, so
// there is deliberately no full-screen program loop behind this — just
// one line rewritten between storage operations.
type Bar struct {
	out       *termenv.Output
	chunkSize int64

	phase probe.Phase
	total int
	done  int
}

// NewBar creates a progress bar writing to out. chunkSize is used to
// render running byte totals alongside the chunk counter.
func NewBar(out io.Writer, chunkSize int64) *Bar {
	return &Bar{out: termenv.NewOutput(out), chunkSize: chunkSize}
}

func (b *Bar) PhaseStarted(phase probe.Phase, totalChunks int) {
	b.phase = phase
	b.total = totalChunks
	b.done = 0
	b.draw()
}

func (b *Bar) ChunkDone(phase probe.Phase, index int) {
	b.done++
	b.draw()
}

func (b *Bar) PhaseFinished(phase probe.Phase) {
	b.draw()
	fmt.Fprintln(b.out)
}

func (b *Bar) draw() {
	b.out.ClearLine()
	fmt.Fprintf(b.out, "\r%s", b.render())
}

// render produces the current line without any cursor control, which
// is what tests assert against.
func (b *Bar) render() string {
	filled := barWidth
	percent := 100
	if b.total > 0 {
		filled = b.done * barWidth / b.total
		percent = b.done * 100 / b.total
	}

	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%s %s %3d%%  %d/%d chunks  %s",
		labelStyle.Render(string(b.phase)),
		bar,
		percent,
		b.done, b.total,
		humanize.IBytes(uint64(b.done)*uint64(b.chunkSize)))
}
