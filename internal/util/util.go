// Package util contains small container and text helpers shared by the STAG
// packages.
package util

import (
	"strings"
	"unicode"
)

// StripSpace returns s with every whitespace character removed.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Dedupe returns the elements of sl with later repeats removed. Order of first
// appearance is kept.
func Dedupe(sl []string) []string {
	seen := StringSet{}
	out := make([]string, 0, len(sl))
	for _, s := range sl {
		if seen.Has(s) {
			continue
		}
		seen.Add(s)
		out = append(out, s)
	}
	return out
}
