package engine

import (
	"github.com/agentstation/doclint/pkg/docs"
)

// suppressedRange is a span of lines where findings for one rule (or every
// rule, when rule is empty) are dropped.
type suppressedRange struct {
	rule  string
	start int
	end   int
}

// buildSuppressions converts each document's inline control comments into
// line ranges, keyed by document path.
func buildSuppressions(documents []docs.Document) map[string][]suppressedRange {
	set := make(map[string][]suppressedRange)
	for i := range documents {
		doc := &documents[i]
		ranges := buildRanges(doc.Suppress, len(doc.RawLines))
		if len(ranges) > 0 {
			set[doc.Path] = ranges
		}
	}
	return set
}

// buildRanges pairs disable comments with the matching enable for the same
// rule. Unclosed disables run to the end of the file; a stray enable is
// ignored.
func buildRanges(comments []docs.SuppressComment, totalLines int) []suppressedRange {
	var ranges []suppressedRange

	type openBlock struct {
		rule string
		line int
	}
	var open []openBlock

	for _, comment := range comments {
		switch comment.Kind {
		case docs.SuppressDisable:
			open = append(open, openBlock{rule: comment.Rule, line: comment.Line})
		case docs.SuppressEnable:
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].rule != comment.Rule {
					continue
				}
				ranges = append(ranges, suppressedRange{
					rule:  open[i].rule,
					start: open[i].line,
					end:   comment.Line,
				})
				open = append(open[:i], open[i+1:]...)
				break
			}
		case docs.SuppressNextLine:
			ranges = append(ranges, suppressedRange{
				rule:  comment.Rule,
				start: comment.Line + 1,
				end:   comment.Line + 1,
			})
		}
	}

	for _, block := range open {
		ranges = append(ranges, suppressedRange{
			rule:  block.rule,
			start: block.line,
			end:   totalLines,
		})
	}

	return ranges
}

// isSuppressed reports whether a finding at (doc, line) with the given
// category falls inside any suppression range.
func isSuppressed(set map[string][]suppressedRange, doc string, line int, category string) bool {
	for _, r := range set[doc] {
		if line >= r.start && line <= r.end && (r.rule == "" || r.rule == category) {
			return true
		}
	}
	return false
}
