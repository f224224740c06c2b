package checkers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentstation/doclint/pkg/analysis"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
)

// placeholderPatterns mark text the author meant to come back to. Checked
// in order; the first hit on a line wins.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[TODO\]`),
	regexp.MustCompile(`(?i)\[TBD\]`),
	regexp.MustCompile(`(?i)\[FIXME\]`),
	regexp.MustCompile(`(?i)\[insert .+?\]`),
	regexp.MustCompile(`(?i)\betc\.?(?:\s|$)`),
	regexp.MustCompile(`(?i)\band so on\b`),
	regexp.MustCompile(`\.{3,}\s*$`),
}

// An "etc." after a real enumeration (2+ comma-separated items, or a chain
// of "or"s) is acceptable prose rather than a placeholder. [^,]+ instead of
// \w+ so multi-word items and special characters count as one item.
var (
	enumerationBeforeEtc   = regexp.MustCompile(`(?:[^,]+,\s*){2,}.*\betc\.?`)
	orEnumerationBeforeEtc = regexp.MustCompile(`(?i)(?:\w+\s+or\s+){2,}\w+\s+etc\.?`)
)

// PlaceholderText warns on unfinished content left in shipped instructions.
type PlaceholderText struct {
	scope *analysis.ScopeFilter
}

// NewPlaceholderText compiles the scope globs.
func NewPlaceholderText(scope []string) (*PlaceholderText, error) {
	filter, err := analysis.NewScopeFilter(scope)
	if err != nil {
		return nil, err
	}
	return &PlaceholderText{scope: filter}, nil
}

// Name implements Checker.
func (*PlaceholderText) Name() string { return string(diagnostic.CategoryPlaceholderText) }

// Check implements Checker.
func (c *PlaceholderText) Check(ctx *Context) []diagnostic.Diagnostic {
	var findings []diagnostic.Diagnostic

	for i := range ctx.Documents {
		doc := &ctx.Documents[i]
		if !c.scope.Includes(doc.Path) {
			continue
		}

		docs.NonCodeLines(doc.RawLines, func(num int, line string) {
			var prev string
			if num >= 2 {
				prev = doc.RawLines[num-2]
			}
			for _, pat := range placeholderPatterns {
				m := pat.FindString(line)
				if m == "" {
					continue
				}
				if isEtcAfterEnumeration(line, m, prev) {
					continue
				}
				findings = append(findings, diagnostic.Diagnostic{
					Document:   doc.Path,
					Line:       num,
					Severity:   diagnostic.Warning,
					Category:   diagnostic.CategoryPlaceholderText,
					Message:    fmt.Sprintf("Placeholder text found: %q", strings.TrimSpace(m)),
					Suggestion: "Replace placeholder with actual content",
				})
				break
			}
		})
	}

	return findings
}

// isEtcAfterEnumeration reports whether the match is an "etc." closing a
// proper enumeration. The previous line covers enumerations that wrap.
func isEtcAfterEnumeration(line, matched, prevLine string) bool {
	trimmed := strings.TrimSpace(matched)
	if len(trimmed) < 3 || !strings.EqualFold(trimmed[:3], "etc") {
		return false
	}
	if enumerationBeforeEtc.MatchString(line) || orEnumerationBeforeEtc.MatchString(line) {
		return true
	}
	if prevLine != "" {
		combined := strings.TrimSpace(prevLine) + " " + strings.TrimSpace(line)
		if enumerationBeforeEtc.MatchString(combined) || orEnumerationBeforeEtc.MatchString(combined) {
			return true
		}
	}
	return false
}
