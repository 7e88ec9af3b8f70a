// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

// Summary aggregates the counters of a finished run. It only exists
// for runs that did not fail: a verification mismatch or fatal write
// error surfaces as an error from [Probe.Run], never as a summary.
type Summary struct {
	// Requested is the chunk count asked for on the command line.
	Requested int

	// Written is the number of chunks actually written. Less than
	// Requested exactly when storage ran out of space.
	Written int

	// Verified is the number of chunks that passed the round-trip
	// check. Equals Written for every successful run.
	Verified int

	// ChunkSize is the uniform chunk size in bytes.
	ChunkSize int64

	// BytesWritten and BytesVerified are the byte totals of the two
	// phases (count × chunk size).
	BytesWritten  int64
	BytesVerified int64
}

// Complete reports whether every requested chunk was written, as
// opposed to a partial success where storage filled up first.
func (s *Summary) Complete() bool {
	return s.Written == s.Requested
}

// Summary returns the counters accumulated so far. Meaningful after
// both phases have run.
func (p *Probe) Summary() *Summary {
	return &Summary{
		Requested:     p.count,
		Written:       len(p.records),
		Verified:      p.verified,
		ChunkSize:     p.size,
		BytesWritten:  p.bytesWritten,
		BytesVerified: p.bytesVerified,
	}
}
