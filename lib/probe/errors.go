// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"

	"github.com/fillprobe/fillprobe/lib/chunk"
)

// VerifyError reports a chunk whose content read back from storage no
// longer matches the digest recorded when it was written. This is
// silent data loss on the medium — the run must fail, never retry or
// skip.
type VerifyError struct {
	// Index is the zero-based index of the corrupted chunk.
	Index int

	// File is the chunk's filename inside the target directory.
	File string

	// Want is the digest recorded at write time.
	Want chunk.Digest

	// Got is the digest of the bytes actually read back.
	Got chunk.Digest
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("chunk %d (%s): content mismatch: wrote %s, read back %s",
		e.Index, e.File, e.Want, e.Got)
}
