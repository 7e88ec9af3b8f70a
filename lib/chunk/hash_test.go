// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package chunk

import (
	"bytes"
	"strings"
	"testing"
)

func TestDigestBufferAndReaderAgree(t *testing.T) {
	data, err := Generate(64 * 1024)
	if err != nil {
		t.Fatal(err)
	}

	fromBuffer := DigestBuffer(data)
	fromReader, consumed, err := DigestReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DigestReader: %v", err)
	}

	if consumed != int64(len(data)) {
		t.Errorf("DigestReader consumed %d bytes, want %d", consumed, len(data))
	}
	if fromBuffer != fromReader {
		t.Errorf("buffer digest %s != reader digest %s", fromBuffer, fromReader)
	}
}

func TestDigestDetectsTruncation(t *testing.T) {
	data, err := Generate(4096)
	if err != nil {
		t.Fatal(err)
	}

	full := DigestBuffer(data)
	truncated := DigestBuffer(data[:len(data)-1])
	if full == truncated {
		t.Error("digest unchanged after truncating one byte")
	}
}

func TestDigestStringRoundTrip(t *testing.T) {
	digest := DigestBuffer([]byte("probe payload"))

	text := digest.String()
	if len(text) != 64 {
		t.Fatalf("digest string is %d characters, want 64", len(text))
	}
	if text != strings.ToLower(text) {
		t.Errorf("digest string %q is not lower-case hex", text)
	}

	parsed, err := ParseDigest(text)
	if err != nil {
		t.Fatalf("ParseDigest(%q): %v", text, err)
	}
	if parsed != digest {
		t.Errorf("ParseDigest round trip mismatch: %s != %s", parsed, digest)
	}
}

func TestParseDigestRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"zz",
		"abcd",
		strings.Repeat("ab", 31),
		strings.Repeat("ab", 33),
	}
	for _, text := range cases {
		if _, err := ParseDigest(text); err == nil {
			t.Errorf("ParseDigest(%q) succeeded, want error", text)
		}
	}
}
