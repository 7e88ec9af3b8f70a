// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package chunk

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 content digest. Equal digests mean equal
// chunk bytes for any adversary that cannot break the hash.
type Digest [32]byte

// DigestBuffer computes the digest of an in-memory buffer. The write
// phase records this fingerprint for the bytes it handed to storage —
// deliberately without re-reading the file, so that the verify phase's
// independent round-trip remains the only check that exercises the
// medium.
func DigestBuffer(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// DigestReader computes the digest of everything readable from r,
// streaming through the hash function so memory use stays constant
// regardless of chunk size. Returns the digest and the number of bytes
// consumed.
func DigestReader(r io.Reader) (Digest, int64, error) {
	hasher := blake3.New()
	consumed, err := io.Copy(hasher, r)
	if err != nil {
		return Digest{}, consumed, fmt.Errorf("hashing stream: %w", err)
	}
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, consumed, nil
}

// String returns the canonical hex form used in logs and error
// messages.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses the 64-character hex form back into a Digest.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing chunk digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("chunk digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
