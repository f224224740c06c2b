// Package analysis implements the cross-document consistency core: it
// canonicalizes identifiers across naming conventions, clusters occurrences
// of named things, detects near-miss naming drift between clusters, and
// diffs value sets of structurally matched tables. Everything here is a
// pure computation over an immutable corpus snapshot — no I/O, no logging,
// no shared mutable state.
package analysis

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes an identifier by splitting on `_`, `-`, space,
// and camelCase boundaries, lowercasing all parts, and joining with `_`.
//
// Handles all-caps acronyms: `HTTPRequest` -> `http_request`,
// `APIKey` -> `api_key`. Total over any input including empty strings,
// Unicode, and delimiter-only strings.
func Normalize(name string) string {
	var parts []string
	var current []rune

	runes := []rune(name)
	n := len(runes)

	flush := func() {
		if len(current) > 0 {
			parts = append(parts, string(current))
			current = current[:0]
		}
	}

	i := 0
	for i < n {
		c := runes[i]

		if c == '_' || c == '-' || c == ' ' {
			flush()
			i++
			continue
		}

		if unicode.IsUpper(c) {
			j := i
			for j < n && unicode.IsUpper(runes[j]) {
				j++
			}
			upperLen := j - i

			if upperLen > 1 {
				flush()
				if j < n && unicode.IsLower(runes[j]) {
					// The run's last letter begins the next word:
					// HTTPRequest -> http + Request
					parts = append(parts, lowerRunes(runes[i:j-1]))
					current = append(current, unicode.ToLower(runes[j-1]))
				} else {
					parts = append(parts, lowerRunes(runes[i:j]))
				}
				i = j
			} else {
				flush()
				current = append(current, unicode.ToLower(c))
				i++
			}
		} else {
			current = append(current, unicode.ToLower(c))
			i++
		}
	}

	flush()
	return strings.Join(parts, "_")
}

// SegmentCount returns how many `_`-separated segments a normalized key has.
// Empty keys have zero segments.
func SegmentCount(key string) int {
	if key == "" {
		return 0
	}
	return strings.Count(key, "_") + 1
}

func lowerRunes(rs []rune) string {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}
