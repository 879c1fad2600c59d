package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex pattern for performance
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// diacriticStripper decomposes text to NFD form and drops combining marks,
// so "vélo" and "velo" normalize to the same token.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// normalizeText lowercases a string and strips diacritical marks.
func normalizeText(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}

// tokenize splits free text into normalized lowercase tokens: diacritics
// stripped, every non-alphanumeric run collapsed to whitespace, empty tokens
// dropped. Pure and deterministic; duplicates are preserved.
func tokenize(s string) []string {
	cleaned := nonAlphanumericRegex.ReplaceAllString(normalizeText(s), " ")
	return strings.Fields(cleaned)
}

// tokenizeValues tokenizes every element of a string slice and returns the
// deduplicated union, preserving first-seen order. Used for category and
// criteria comparisons.
func tokenizeValues(values []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range values {
		for _, t := range tokenize(v) {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// normalizeValues maps normalizeText over a slice, keeping whole strings
// intact (no splitting). Used where exclusion rules compare full category
// names rather than tokens.
func normalizeValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, normalizeText(v))
	}
	return out
}
