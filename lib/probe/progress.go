// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

// Phase identifies which half of the run a progress event belongs to.
type Phase string

const (
	PhaseWrite  Phase = "write"
	PhaseVerify Phase = "verify"
)

// Reporter receives per-chunk progress. Implementations render it
// however they like (terminal bar, log lines); the engine only promises
// that ChunkDone indexes arrive in strict ascending order within a
// phase and that every started phase is finished.
type Reporter interface {
	PhaseStarted(phase Phase, totalChunks int)
	ChunkDone(phase Phase, index int)
	PhaseFinished(phase Phase)
}

// NopReporter discards all progress events. It is the default when no
// reporter is configured, and what tests use to run the engine without
// a terminal attached.
type NopReporter struct{}

func (NopReporter) PhaseStarted(Phase, int) {}
func (NopReporter) ChunkDone(Phase, int)    {}
func (NopReporter) PhaseFinished(Phase)     {}
