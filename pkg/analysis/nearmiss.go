package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/agentstation/doclint/pkg/diagnostic"
)

// DefaultSimilarityThreshold is the Jaro-Winkler score at which two
// distinct cluster keys are reported as a possible naming drift. Tuned
// empirically; expose via configuration rather than relying on this value.
const DefaultSimilarityThreshold = 0.92

var (
	isoDatePattern   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	monthDatePattern = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2},?\s+\d{4}\b`)

	// Ordinal heading prefixes: "3.", "4)", "Step 2:", "Phase 1".
	ordinalPrefixPattern = regexp.MustCompile(`(?i)^(?:\d+[.):]|(?:step|phase)\s+\d+:?)\s*`)

	// key: value configuration lines.
	keyValuePattern = regexp.MustCompile(`^[\w][\w .-]*:\s*\S`)

	digitPattern = regexp.MustCompile(`\d`)
)

// Similarity returns the Jaro-Winkler similarity of two strings in [0, 1].
func Similarity(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}

// NearMissFindings compares normalized keys across clusters and reports
// pairs that are almost — but not exactly — the same key, such as
// `api_config` vs `api_configs`. Single-segment keys are excluded: they
// produce too many coincidental matches.
//
// Several classes of high-similarity pairs are systematically not naming
// drift and are suppressed: dates, numbered sequential headings,
// digit-only differences (version numbers, enumerated labels), key:value
// configuration lines, and cluster pairs that occur in exactly the same
// set of documents (deliberately distinct terms).
func NearMissFindings(clusters Clusters, threshold float64) []diagnostic.Diagnostic {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	var keys []string
	for _, key := range clusters.SortedKeys() {
		if SegmentCount(key) >= 2 {
			keys = append(keys, key)
		}
	}

	var findings []diagnostic.Diagnostic

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			keyA, keyB := keys[i], keys[j]

			score := Similarity(keyA, keyB)
			if score < threshold {
				continue
			}

			groupA, groupB := clusters[keyA], clusters[keyB]
			repA, repB := groupA[0].Original, groupB[0].Original

			if suppressNearMiss(repA, repB) {
				continue
			}
			if sameDocumentSet(documentSet(groupA), documentSet(groupB)) {
				continue
			}

			msg := fmt.Sprintf("Similar names: %q and %q might refer to the same concept (similarity: %.0f%%)",
				repA, repB, score*100)
			suggestion := fmt.Sprintf("Standardize on one form, e.g. %q", repA)

			for _, occ := range groupA {
				findings = append(findings, infoFinding(occ, msg, suggestion))
			}
			for _, occ := range groupB {
				findings = append(findings, infoFinding(occ, msg, suggestion))
			}
		}
	}

	return findings
}

func infoFinding(occ Occurrence, msg, suggestion string) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Document:   occ.Doc,
		Line:       occ.Line,
		Severity:   diagnostic.Info,
		Category:   diagnostic.CategoryNaming,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// suppressNearMiss applies the representative-text false-positive filters.
func suppressNearMiss(repA, repB string) bool {
	// Two different dates are not a naming drift.
	if isDateLike(repA) || isDateLike(repB) {
		return true
	}

	// Sequential headings: "3. Validation Checklist" vs "4. Validation Checklist".
	strippedA := ordinalPrefixPattern.ReplaceAllString(repA, "")
	strippedB := ordinalPrefixPattern.ReplaceAllString(repB, "")
	if (strippedA != repA || strippedB != repB) && strings.EqualFold(strippedA, strippedB) {
		return true
	}

	// Version numbers or enumerated output labels.
	if digitPattern.MatchString(repA) || digitPattern.MatchString(repB) {
		if digitPattern.ReplaceAllString(repA, "") == digitPattern.ReplaceAllString(repB, "") {
			return true
		}
	}

	// Comparing arbitrary config values is not meaningful.
	if keyValuePattern.MatchString(repA) || keyValuePattern.MatchString(repB) {
		return true
	}

	return false
}

func isDateLike(s string) bool {
	return isoDatePattern.MatchString(s) || monthDatePattern.MatchString(s)
}
