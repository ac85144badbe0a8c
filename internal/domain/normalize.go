package domain

import (
	"regexp"
	"strings"
)

var (
	parenRe       = regexp.MustCompile(`\s*\([^)]*\)`)
	boldRe        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	trailingVerRe = regexp.MustCompile(`\s+v?\d+(\.\d+)*$`)
	squashRe      = regexp.MustCompile(`[\s\-_.]+`)
)

// NormalizeTech canonicalizes a technology name for comparison: lower-case,
// whitespace/hyphen/underscore/dot runs removed, and a trailing ".js"
// collapsed to "js" so "Node.js", "nodejs" and "node js" compare equal.
// Idempotent: NormalizeTech(NormalizeTech(x)) == NormalizeTech(x).
func NormalizeTech(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.HasSuffix(s, ".js") {
		s = strings.TrimSuffix(s, ".js") + "js"
	}
	return squashRe.ReplaceAllString(s, "")
}

// CleanTechClaim strips markup and version noise from a raw claim taken
// from a README list item: parenthetical asides, bold markers, and a
// trailing bare or v-prefixed version number. Returns "" for claims that
// reduce to one character or less.
func CleanTechClaim(raw string) string {
	s := strings.TrimSpace(raw)
	s = boldRe.ReplaceAllString(s, "$1")
	s = parenRe.ReplaceAllString(s, "")
	s = trailingVerRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if len(s) <= 1 {
		return ""
	}
	return s
}

// dedupe returns items with duplicates removed, preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
