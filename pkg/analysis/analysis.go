package analysis

import (
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
)

// NamingOptions configures the naming-consistency pipeline.
type NamingOptions struct {
	// Scope restricts which documents participate; nil includes all.
	Scope *ScopeFilter
	// SimilarityThreshold for near-miss detection; <= 0 uses the default.
	SimilarityThreshold float64
}

// NamingFindings runs the full naming pipeline: collect occurrences,
// cluster by normalized key, then flag exact-variant inconsistencies and
// fuzzy near-misses. Nothing is compared within a single document.
func NamingFindings(documents []docs.Document, opts NamingOptions) []diagnostic.Diagnostic {
	occurrences := CollectOccurrences(documents, opts.Scope)
	clusters := BuildClusters(occurrences)

	findings := ExactVariantFindings(clusters)
	findings = append(findings, NearMissFindings(clusters, opts.SimilarityThreshold)...)
	return findings
}

// DriftOptions configures the enumeration-drift pipeline.
type DriftOptions struct {
	// Scope restricts which documents participate; nil includes all.
	Scope *ScopeFilter
	// Historical excludes documents whose old enumerations are expected
	// to diverge (changelogs, retros); nil excludes nothing.
	Historical func(path string) bool
	// SectionSimilarityThreshold for the single-shared-column fallback;
	// <= 0 uses the default.
	SectionSimilarityThreshold float64
}

// DriftFindings runs the table-drift pipeline: match tables across
// documents and diff the value sets of shared columns.
func DriftFindings(documents []docs.Document, opts DriftOptions) []diagnostic.Diagnostic {
	return TableDriftFindings(documents, opts.Scope, opts.Historical, opts.SectionSimilarityThreshold)
}
