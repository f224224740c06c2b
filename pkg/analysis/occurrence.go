package analysis

import (
	"sort"
	"strings"

	"github.com/agentstation/doclint/pkg/docs"
)

// Occurrence is one sighting of a named thing — a table column header or a
// section title. Occurrences are created once during collection and never
// mutated.
type Occurrence struct {
	Original string // trimmed literal spelling as written
	Key      string // Normalize(Original)
	Doc      string // document path
	Line     int
}

// CollectOccurrences walks the corpus and emits one Occurrence per
// non-empty table column header and per non-empty section title in every
// in-scope document. The result is sorted by (doc, line, original) so all
// downstream grouping is order-independent.
func CollectOccurrences(documents []docs.Document, scope *ScopeFilter) []Occurrence {
	var occurrences []Occurrence

	for _, doc := range documents {
		if !scope.Includes(doc.Path) {
			continue
		}
		for _, table := range doc.Tables {
			for _, header := range table.Headers {
				trimmed := strings.TrimSpace(header)
				if trimmed == "" {
					continue
				}
				occurrences = append(occurrences, Occurrence{
					Original: trimmed,
					Key:      Normalize(trimmed),
					Doc:      doc.Path,
					Line:     table.Line,
				})
			}
		}
		for _, section := range doc.Sections {
			trimmed := strings.TrimSpace(section.Title)
			if trimmed == "" {
				continue
			}
			occurrences = append(occurrences, Occurrence{
				Original: trimmed,
				Key:      Normalize(trimmed),
				Doc:      doc.Path,
				Line:     section.Line,
			})
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if a.Doc != b.Doc {
			return a.Doc < b.Doc
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Original < b.Original
	})

	return occurrences
}

// Clusters maps a normalized key to all Occurrences sharing it. Every
// occurrence belongs to exactly one cluster.
type Clusters map[string][]Occurrence

// BuildClusters groups occurrences by normalized key. Members keep the
// sorted order produced by CollectOccurrences.
func BuildClusters(occurrences []Occurrence) Clusters {
	clusters := make(Clusters)
	for _, occ := range occurrences {
		clusters[occ.Key] = append(clusters[occ.Key], occ)
	}
	return clusters
}

// SortedKeys returns the cluster keys in lexicographic order. Map iteration
// order is not stable; every caller that iterates clusters goes through
// this.
func (c Clusters) SortedKeys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Representative returns the cluster's first occurrence, which is the
// earliest by (doc, line, original) thanks to collection-time sorting.
func (c Clusters) Representative(key string) Occurrence {
	return c[key][0]
}

// documentSet returns the distinct documents a cluster spans.
func documentSet(occurrences []Occurrence) map[string]struct{} {
	set := make(map[string]struct{}, len(occurrences))
	for _, occ := range occurrences {
		set[occ.Doc] = struct{}{}
	}
	return set
}

func sameDocumentSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for doc := range a {
		if _, ok := b[doc]; !ok {
			return false
		}
	}
	return true
}
