package analysis

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
)

// DefaultSectionSimilarityThreshold is the Jaro-Winkler score two parent
// section titles must reach for a single shared column to count as a table
// match. Tuned empirically; expose via configuration.
const DefaultSectionSimilarityThreshold = 0.8

// valueDisplayLimit caps how much of a cell value appears in a message.
const valueDisplayLimit = 50

// tableRef pairs a table with its document and pre-normalized headers.
type tableRef struct {
	table *docs.Table
	doc   string
	keys  []string // Normalize(header), index-aligned with Headers
}

// collectTables gathers every table from in-scope, non-historical documents
// in deterministic (document, line) order. The historical predicate lets
// callers exclude documents like changelogs whose old enumerations are
// expected to diverge; nil means nothing is historical.
func collectTables(documents []docs.Document, scope *ScopeFilter, historical func(string) bool) []tableRef {
	var refs []tableRef
	for i := range documents {
		doc := &documents[i]
		if !scope.Includes(doc.Path) {
			continue
		}
		if historical != nil && historical(doc.Path) {
			continue
		}
		for j := range doc.Tables {
			table := &doc.Tables[j]
			keys := make([]string, len(table.Headers))
			for k, h := range table.Headers {
				keys[k] = Normalize(h)
			}
			refs = append(refs, tableRef{table: table, doc: doc.Path, keys: keys})
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].doc != refs[j].doc {
			return refs[i].doc < refs[j].doc
		}
		return refs[i].table.Line < refs[j].table.Line
	})

	return refs
}

// tablesMatch decides whether two tables from different documents describe
// the same structure. Two shared normalized headers always match; a single
// shared header matches only with strong contextual agreement from both
// parent section titles; zero shared headers never match.
func tablesMatch(a, b tableRef, sectionThreshold float64) bool {
	if sectionThreshold <= 0 {
		sectionThreshold = DefaultSectionSimilarityThreshold
	}

	shared := 0
	for _, key := range a.keys {
		for _, other := range b.keys {
			if key == other {
				shared++
				break
			}
		}
	}

	if shared >= 2 {
		return true
	}
	if shared == 1 && a.table.ParentSection != "" && b.table.ParentSection != "" {
		return Similarity(a.table.ParentSection, b.table.ParentSection) >= sectionThreshold
	}
	return false
}

// TableDriftFindings matches tables pairwise across documents and, for
// every shared column, reports values present on only one side. Findings
// are deduplicated by (document, line, message): one column can be compared
// against several documents and must not repeat identical text for the same
// source location.
func TableDriftFindings(documents []docs.Document, scope *ScopeFilter, historical func(string) bool, sectionThreshold float64) []diagnostic.Diagnostic {
	refs := collectTables(documents, scope, historical)

	var findings []diagnostic.Diagnostic
	seen := make(map[diagnostic.Key]struct{})

	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			a, b := refs[i], refs[j]
			if a.doc == b.doc || !tablesMatch(a, b, sectionThreshold) {
				continue
			}
			findings = appendDrift(findings, seen, a, b)
		}
	}

	return findings
}

// appendDrift diffs the value sets of every column the two tables share.
func appendDrift(findings []diagnostic.Diagnostic, seen map[diagnostic.Key]struct{}, a, b tableRef) []diagnostic.Diagnostic {
	for colA, key := range a.keys {
		colB := indexOf(b.keys, key)
		if colB < 0 {
			continue
		}

		valuesA := columnValues(a.table, colA)
		valuesB := columnValues(b.table, colB)

		onlyA := setDifference(valuesA, valuesB)
		onlyB := setDifference(valuesB, valuesA)

		for _, side := range []struct {
			diff       []string
			src        tableRef
			col        int
			counterDoc string
		}{
			{onlyA, a, colA, b.doc},
			{onlyB, b, colB, a.doc},
		} {
			if len(side.diff) == 0 {
				continue
			}
			msg := fmt.Sprintf("Column %q has values %s not found in %s",
				side.src.table.Headers[side.col],
				formatValues(side.diff),
				path.Base(side.counterDoc))

			d := diagnostic.Diagnostic{
				Document:   side.src.doc,
				Line:       side.src.table.Line,
				Severity:   diagnostic.Warning,
				Category:   diagnostic.CategoryEnumDrift,
				Message:    msg,
				Suggestion: "Align the value sets across files or document why they differ",
			}
			if _, dup := seen[d.Key()]; dup {
				continue
			}
			seen[d.Key()] = struct{}{}
			findings = append(findings, d)
		}
	}
	return findings
}

// columnValues collects the distinct non-empty trimmed cell values under a
// column. Rows shorter than the header list simply contribute nothing for
// that column.
func columnValues(table *docs.Table, col int) map[string]struct{} {
	values := make(map[string]struct{})
	for _, row := range table.Rows {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		values[v] = struct{}{}
	}
	return values
}

func setDifference(a, b map[string]struct{}) []string {
	var diff []string
	for v := range a {
		if _, ok := b[v]; !ok {
			diff = append(diff, v)
		}
	}
	sort.Strings(diff)
	return diff
}

// formatValues quotes each value, truncating long values for display.
func formatValues(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		if runes := []rune(v); len(runes) > valueDisplayLimit {
			v = string(runes[:valueDisplayLimit]) + "..."
		}
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
