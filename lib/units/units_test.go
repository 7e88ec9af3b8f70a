// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package units

import (
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		expression string
		want       int64
	}{
		{"10", 10},
		{"0", 0},
		{"1K", 1024},
		{"1KB", 1024},
		{"1kb", 1024},
		{"256M", 256 * 1024 * 1024},
		{"256MB", 256 * 1024 * 1024},
		{"1.5G", 1610612736},
		{"1.5gb", 1610612736},
		{"2T", 2 * 1024 * 1024 * 1024 * 1024},
		{"1P", 1 << 50},
		{"0.5K", 512},
		{" 64M ", 64 * 1024 * 1024},
		{"10B", 10},
	}
	for _, c := range cases {
		got, err := ParseSize(c.expression)
		if err != nil {
			t.Errorf("ParseSize(%q) failed: %v", c.expression, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSize(%q) = %d, want %d", c.expression, got, c.want)
		}
	}
}

func TestParseSizeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"abc",
		"M",
		"B",
		"MB",
		"12Q",
		"1..5G",
		"-1K",
		"+1K",
		"1e3",
		"0x10",
		"0x1p4",
		"1.5.2M",
		"256 M",
	}
	for _, expression := range cases {
		if _, err := ParseSize(expression); err == nil {
			t.Errorf("ParseSize(%q) succeeded, want error", expression)
		} else if !strings.Contains(err.Error(), expression) {
			t.Errorf("ParseSize(%q) error %q does not name the input", expression, err)
		}
	}
}

func TestParseSizeRejectsOverflow(t *testing.T) {
	for _, expression := range []string{"9999P", "10000000T", "99999999999999999999"} {
		_, err := ParseSize(expression)
		if err == nil {
			t.Fatalf("ParseSize(%q) succeeded, want overflow error", expression)
		}
		if !strings.Contains(err.Error(), expression) {
			t.Errorf("overflow error %q does not name the input %q", err, expression)
		}
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0B"},
		{10, "10B"},
		{1023, "1023B"},
		{1024, "1K"},
		{1536, "1.5K"},
		{256 * 1024 * 1024, "256M"},
		{1610612736, "1.5G"},
		{1 << 50, "1P"},
	}
	for _, c := range cases {
		if got := FormatSize(c.bytes); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.bytes, got, c.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	expressions := []string{"10", "1K", "256M", "1.5G", "3T", "1P", "777", "0.25M"}
	for _, expression := range expressions {
		first, err := ParseSize(expression)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", expression, err)
		}
		second, err := ParseSize(FormatSize(first))
		if err != nil {
			t.Fatalf("ParseSize(FormatSize(%d)): %v", first, err)
		}
		if first != second {
			t.Errorf("round trip of %q: %d -> %q -> %d", expression, first, FormatSize(first), second)
		}
	}
}
