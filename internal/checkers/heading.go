package checkers

import (
	"fmt"

	"github.com/agentstation/doclint/pkg/analysis"
	"github.com/agentstation/doclint/pkg/diagnostic"
)

// HeadingHierarchy flags heading levels that skip a step (h2 followed by
// h4), which usually means a heading was deleted or mistyped.
type HeadingHierarchy struct {
	scope *analysis.ScopeFilter
}

// NewHeadingHierarchy compiles the scope globs.
func NewHeadingHierarchy(scope []string) (*HeadingHierarchy, error) {
	filter, err := analysis.NewScopeFilter(scope)
	if err != nil {
		return nil, err
	}
	return &HeadingHierarchy{scope: filter}, nil
}

// Name implements Checker.
func (*HeadingHierarchy) Name() string { return string(diagnostic.CategoryHeadingHierarchy) }

// Check implements Checker.
func (c *HeadingHierarchy) Check(ctx *Context) []diagnostic.Diagnostic {
	var findings []diagnostic.Diagnostic

	for i := range ctx.Documents {
		doc := &ctx.Documents[i]
		if !c.scope.Includes(doc.Path) {
			continue
		}

		lastLevel := 0
		for _, section := range doc.Sections {
			if lastLevel > 0 && section.Level > lastLevel+1 {
				findings = append(findings, diagnostic.Diagnostic{
					Document:   doc.Path,
					Line:       section.Line,
					Severity:   diagnostic.Info,
					Category:   diagnostic.CategoryHeadingHierarchy,
					Message:    fmt.Sprintf("Heading level skipped: h%d to h%d (%q)", lastLevel, section.Level, section.Title),
					Suggestion: "Add an intermediate heading level to maintain hierarchy",
				})
			}
			lastLevel = section.Level
		}
	}

	return findings
}
