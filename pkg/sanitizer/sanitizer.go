// Package sanitizer normalizes customer input before validation and
// storage. All functions are idempotent and handle bad input by returning
// empty values rather than errors.
package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var reKeepLettersDigits = regexp.MustCompile(`[^0-9\p{L}]+`)

func trimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func collapseUnderscores(s string) string {
	s = regexp.MustCompile(`_+`).ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// CacheKey flattens free text into a stable lowercase token, used to key
// geocoding cache entries. "Lekki Phase 1, Lagos" becomes
// "lekki_phase_1_lagos".
func CacheKey(input string) string {
	p := Pipeline{
		trimAndLower,
		func(s string) string { return reKeepLettersDigits.ReplaceAllString(s, "_") },
		collapseUnderscores,
	}
	return p.Apply(input)
}
