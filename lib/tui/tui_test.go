// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/fillprobe/fillprobe/lib/probe"
)

func TestBarRender(t *testing.T) {
	bar := NewBar(&strings.Builder{}, 1024*1024)
	bar.phase = probe.PhaseWrite
	bar.total = 10
	bar.done = 5

	line := bar.render()
	if !strings.Contains(line, "write") {
		t.Errorf("render %q lacks the phase label", line)
	}
	if !strings.Contains(line, "50%") {
		t.Errorf("render %q lacks the percentage", line)
	}
	if !strings.Contains(line, "5/10 chunks") {
		t.Errorf("render %q lacks the chunk counter", line)
	}
	if !strings.Contains(line, "5.0 MiB") {
		t.Errorf("render %q lacks the byte total", line)
	}
}

func TestBarZeroTotal(t *testing.T) {
	bar := NewBar(&strings.Builder{}, 1024)
	bar.phase = probe.PhaseVerify
	bar.total = 0
	bar.done = 0

	// A zero-chunk phase renders as complete rather than dividing by
	// zero.
	line := bar.render()
	if !strings.Contains(line, "100%") {
		t.Errorf("render %q for an empty phase is not 100%%", line)
	}
}

func TestRenderSummaryFull(t *testing.T) {
	text := RenderSummary(&probe.Summary{
		Requested:     4,
		Written:       4,
		Verified:      4,
		ChunkSize:     1024,
		BytesWritten:  4096,
		BytesVerified: 4096,
	})
	if !strings.Contains(text, "4/4") {
		t.Errorf("summary %q lacks the written counter", text)
	}
	if !strings.Contains(text, "all requested chunks written and verified") {
		t.Errorf("summary %q lacks the full-success status", text)
	}
}

func TestRenderSummaryPartial(t *testing.T) {
	text := RenderSummary(&probe.Summary{
		Requested:     100,
		Written:       37,
		Verified:      37,
		ChunkSize:     1024,
		BytesWritten:  37 * 1024,
		BytesVerified: 37 * 1024,
	})
	if !strings.Contains(text, "storage exhausted after 37 of 100 chunks") {
		t.Errorf("summary %q lacks the partial status", text)
	}
	if strings.Contains(text, "all requested chunks") {
		t.Errorf("partial summary %q rendered as full success", text)
	}
}
