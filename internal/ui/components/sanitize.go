package components

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern  = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
	spaceRun    = regexp.MustCompile(`\s+`)
	markup      = bluemonday.StrictPolicy()
)

var bidiControls = map[rune]struct{}{
	'\u202a': {},
	'\u202b': {},
	'\u202c': {},
	'\u202d': {},
	'\u202e': {},
	'\u2066': {},
	'\u2067': {},
	'\u2068': {},
	'\u2069': {},
	'\u200e': {},
	'\u200f': {},
}

// SanitizeText strips control characters and ANSI escape sequences from display strings.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := oscPattern.ReplaceAllString(input, "")
	cleaned = ansiPattern.ReplaceAllString(cleaned, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if _, ok := bidiControls[r]; ok {
			return -1
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine sanitizes input and collapses all whitespace to single spaces.
func SanitizeOneLine(input string) string {
	cleaned := SanitizeText(input)
	return strings.TrimSpace(spaceRun.ReplaceAllString(cleaned, " "))
}

// StripMarkup removes HTML from backend rich-text fields and returns a
// single display line.
func StripMarkup(input string) string {
	if input == "" {
		return input
	}
	return SanitizeOneLine(html.UnescapeString(markup.Sanitize(input)))
}
