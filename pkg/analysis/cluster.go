package analysis

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/doclint/pkg/diagnostic"
)

// lowerCaser folds arbitrary Unicode spellings for the case-only test.
var lowerCaser = cases.Lower(language.Und)

// ExactVariantFindings flags clusters whose members are spelled more than
// one way across more than one document. One warning is emitted per
// occurrence so every sighting of the inconsistent name is annotated.
//
// A cluster is skipped when it has fewer than two distinct literal
// spellings, when the spellings differ only by case (stylistic, not
// semantic drift), or when every occurrence lives in a single document.
func ExactVariantFindings(clusters Clusters) []diagnostic.Diagnostic {
	var findings []diagnostic.Diagnostic

	for _, key := range clusters.SortedKeys() {
		group := clusters[key]

		variants := distinctSpellings(group)
		if len(variants) < 2 {
			continue
		}

		lowered := make(map[string]struct{}, len(variants))
		for _, v := range variants {
			lowered[lowerCaser.String(v)] = struct{}{}
		}
		if len(lowered) < 2 {
			continue
		}

		if len(documentSet(group)) < 2 {
			continue
		}

		quoted := make([]string, len(variants))
		for i, v := range variants {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		msg := fmt.Sprintf("Inconsistent naming: %s refer to the same concept", strings.Join(quoted, " vs "))
		suggestion := fmt.Sprintf("Standardize on one spelling, e.g. %q", canonicalSpelling(group))

		for _, occ := range group {
			findings = append(findings, diagnostic.Diagnostic{
				Document:   occ.Doc,
				Line:       occ.Line,
				Severity:   diagnostic.Warning,
				Category:   diagnostic.CategoryNaming,
				Message:    msg,
				Suggestion: suggestion,
			})
		}
	}

	return findings
}

// distinctSpellings returns the sorted set of literal spellings in a group.
func distinctSpellings(group []Occurrence) []string {
	seen := make(map[string]struct{}, len(group))
	for _, occ := range group {
		seen[occ.Original] = struct{}{}
	}
	variants := make([]string, 0, len(seen))
	for v := range seen {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	return variants
}

// canonicalSpelling proposes the most frequent spelling in the group,
// breaking ties lexicographically.
func canonicalSpelling(group []Occurrence) string {
	counts := make(map[string]int, len(group))
	for _, occ := range group {
		counts[occ.Original]++
	}

	best := ""
	bestCount := 0
	for _, spelling := range distinctSpellings(group) {
		if counts[spelling] > bestCount {
			best = spelling
			bestCount = counts[spelling]
		}
	}
	return best
}
