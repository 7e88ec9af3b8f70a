// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

// writeOutcome is the tagged result of one chunk write attempt. The
// write loop reduces every attempt to exactly one of three outcomes
// instead of branching on raw error values, which keeps the
// out-of-space special case in a single place.
type writeOutcome int

const (
	// outcomeWritten: the chunk is on storage and gets a record.
	outcomeWritten writeOutcome = iota

	// outcomeExhausted: storage is full. Expected, ends the write
	// phase early without failing the run.
	outcomeExhausted

	// outcomeFatal: any other write failure (permissions, I/O, path).
	// Aborts the run before the verify phase.
	outcomeFatal
)

// classifyWrite reduces a write error to its outcome.
func classifyWrite(err error) writeOutcome {
	switch {
	case err == nil:
		return outcomeWritten
	case IsExhausted(err):
		return outcomeExhausted
	default:
		return outcomeFatal
	}
}
