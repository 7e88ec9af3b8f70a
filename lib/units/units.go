// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package units parses and formats the chunk-size expressions accepted
// on the command line. The grammar is a decimal mantissa followed by an
// optional binary-prefix unit letter (K, M, G, T, P — multipliers of
// 1024ⁿ) and an optional literal B, all case-insensitive:
//
//	"10"    ->               10 bytes
//	"256M"  ->      268435456 bytes
//	"1.5GB" ->     1610612736 bytes
//
// Values above the safe-integer ceiling (2⁵³−1, ~8 PiB) are rejected so
// a byte count always survives a round-trip through float64 exactly.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBytes is the largest byte count a size expression may denote.
// Mantissas are parsed through float64; above 2⁵³−1 integers lose
// precision and the byte count would silently drift.
const MaxBytes = 1<<53 - 1

// unitShift maps a unit letter to its binary exponent. The letters are
// stored upper-case; lookup folds case first.
var unitShift = map[byte]uint{
	'K': 10,
	'M': 20,
	'G': 30,
	'T': 40,
	'P': 50,
}

// ParseSize converts a size expression into a byte count. Errors quote
// the original expression so CLI messages identify the offending input.
func ParseSize(expression string) (int64, error) {
	body := strings.TrimSpace(expression)
	if body == "" {
		return 0, fmt.Errorf("invalid size expression %q: empty", expression)
	}

	// Strip the optional trailing B, then the optional unit letter.
	shift := uint(0)
	if last := foldUpper(body[len(body)-1]); last == 'B' {
		body = body[:len(body)-1]
	}
	if body == "" {
		return 0, fmt.Errorf("invalid size expression %q: missing mantissa", expression)
	}
	if s, ok := unitShift[foldUpper(body[len(body)-1])]; ok {
		shift = s
		body = body[:len(body)-1]
	}

	// Only plain decimal mantissas are part of the grammar. ParseFloat
	// alone would also accept exponents ("1e3") and hex floats
	// ("0x1p4"), which must be rejected.
	if !isDecimalMantissa(body) {
		return 0, fmt.Errorf("invalid size expression %q", expression)
	}
	mantissa, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size expression %q", expression)
	}

	value := mantissa * float64(int64(1)<<shift)
	if value > MaxBytes {
		return 0, fmt.Errorf("size expression %q exceeds the maximum of %d bytes", expression, int64(MaxBytes))
	}
	return int64(value), nil
}

// FormatSize renders a byte count back into the expression grammar,
// using the largest unit that keeps the mantissa at or above one. The
// mantissa is printed with the shortest exact decimal representation,
// so ParseSize(FormatSize(n)) == n for every n the parser can produce:
// n is at most 2⁵³−1 (exact in float64) and dividing by a power of two
// never loses bits.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return strconv.FormatInt(bytes, 10) + "B"
	}

	shift := uint(0)
	for _, unit := range []byte{'K', 'M', 'G', 'T', 'P'} {
		s := unitShift[unit]
		if bytes >= int64(1)<<s {
			shift = s
		}
	}

	if shift == 0 {
		return strconv.FormatInt(bytes, 10) + "B"
	}

	mantissa := float64(bytes) / float64(int64(1)<<shift)
	letter := ""
	for unit, s := range unitShift {
		if s == shift {
			letter = string(unit)
		}
	}
	return strconv.FormatFloat(mantissa, 'f', -1, 64) + letter
}

// isDecimalMantissa reports whether s consists of decimal digits with
// at most one interior dot. Signs are excluded: sizes are magnitudes.
func isDecimalMantissa(s string) bool {
	dots := 0
	digits := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// foldUpper maps ASCII lower-case letters to upper-case.
func foldUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
