// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package probe implements the write/verify engine of the disk-space
// exhaustion probe.
//
// A run has exactly two phases, executed strictly in sequence. The
// write phase fills the target directory with randomly generated chunk
// files, recording a content digest for each successful write; running
// out of space is an expected outcome that ends the phase early, while
// any other failure aborts the run. The verify phase then re-reads
// every recorded chunk from storage and re-derives its digest — a
// genuine round trip through the medium, so it catches corruption,
// truncation, and write-acknowledgement lies that the write phase's
// in-memory fingerprint cannot see.
//
// The engine is single-threaded by design: no two storage operations
// ever overlap, which keeps out-of-space detection deterministic (the
// first failing index is the exact point of exhaustion) and makes the
// run a measurement of sustained single-stream throughput.
package probe
