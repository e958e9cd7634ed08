// Package sequence implements the nucleotide operations behind the
// reverse complement window: normalization, complement substitution,
// reversal and the batch insert helpers.
package sequence

import (
	"strings"
	"unicode"
)

var complement = map[rune]rune{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
	'N': 'N',
}

// Normalize strips all whitespace, including embedded newlines, and
// uppercases what remains.
func Normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}

// Complement substitutes A<->T, C<->G and N<->N. Characters outside that
// alphabet are passed through unchanged.
func Complement(seq string) string {
	var sb strings.Builder
	sb.Grow(len(seq))
	for _, r := range seq {
		if c, ok := complement[r]; ok {
			sb.WriteRune(c)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Reverse reverses seq rune by rune.
func Reverse(seq string) string {
	runes := []rune(seq)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseComplement normalizes raw, reverses it and complements each base.
// An input that is empty after normalization yields "".
func ReverseComplement(raw string) string {
	seq := Normalize(raw)
	if seq == "" {
		return ""
	}
	return Complement(Reverse(seq))
}
