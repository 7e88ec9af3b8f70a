// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package chunk provides the building blocks of the probe's data model:
// deterministic chunk filenames, cryptographically random payloads, and
// BLAKE3 content digests computed either over an in-memory buffer (at
// write time) or streamed from storage (at verify time).
package chunk

import (
	"crypto/rand"
	"fmt"
)

// Filename constants. The verify phase reconstructs filenames from
// indexes alone, so these are a contract: changing them orphans every
// chunk written by an earlier build.
const (
	filePrefix = "chk_"
	fileSuffix = ".bin"
	indexWidth = 5
)

// FileName returns the filename for the chunk at the given zero-based
// index: the index zero-padded to five digits between a fixed prefix
// and extension ("chk_00007.bin"). Zero padding keeps lexicographic
// order identical to index order for any run of up to 100000 chunks.
func FileName(index int) string {
	return fmt.Sprintf("%s%0*d%s", filePrefix, indexWidth, index, fileSuffix)
}

// Generate returns exactly size bytes drawn from the operating system's
// cryptographically secure random source. Random payloads defeat
// transparent compression and deduplication in the storage stack, so
// every chunk costs the medium its full nominal size.
//
// A random-source failure is unrecoverable for the whole run and is
// returned as an error rather than papered over with a weaker source.
func Generate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		return nil, fmt.Errorf("reading from random source: %w", err)
	}
	return data, nil
}
