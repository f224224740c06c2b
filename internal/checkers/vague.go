package checkers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentstation/doclint/pkg/analysis"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
	"github.com/agentstation/doclint/pkg/errors"
)

const vagueSuggestion = "Replace with a specific, deterministic instruction"

// VagueDirective flags hedging instructions ("try to", "when appropriate")
// that leave behavior up to interpretation. The built-in phrases are found
// during parsing; extra regexes come from configuration.
type VagueDirective struct {
	scope *analysis.ScopeFilter
	extra []*regexp.Regexp
}

// NewVagueDirective compiles the scope globs and the extra patterns.
func NewVagueDirective(scope, extraPatterns []string) (*VagueDirective, error) {
	filter, err := analysis.NewScopeFilter(scope)
	if err != nil {
		return nil, err
	}
	extra := make([]*regexp.Regexp, 0, len(extraPatterns))
	for _, p := range extraPatterns {
		re, compileErr := regexp.Compile(p)
		if compileErr != nil {
			return nil, errors.NewPatternError(p, compileErr)
		}
		extra = append(extra, re)
	}
	return &VagueDirective{scope: filter, extra: extra}, nil
}

// Name implements Checker.
func (*VagueDirective) Name() string { return string(diagnostic.CategoryVagueDirective) }

// Check implements Checker.
func (c *VagueDirective) Check(ctx *Context) []diagnostic.Diagnostic {
	var findings []diagnostic.Diagnostic

	for i := range ctx.Documents {
		doc := &ctx.Documents[i]
		if !c.scope.Includes(doc.Path) {
			continue
		}

		for _, directive := range doc.Directives {
			findings = append(findings, diagnostic.Diagnostic{
				Document:   doc.Path,
				Line:       directive.Line,
				Severity:   diagnostic.Info,
				Category:   diagnostic.CategoryVagueDirective,
				Message:    fmt.Sprintf("Non-deterministic directive found: %q", strings.TrimSpace(directive.Matched)),
				Suggestion: vagueSuggestion,
			})
		}

		if len(c.extra) == 0 {
			continue
		}
		docs.NonCodeLines(doc.RawLines, func(num int, line string) {
			if !docs.IsDirectiveLine(line) {
				return
			}
			for _, re := range c.extra {
				m := re.FindString(line)
				if m == "" {
					continue
				}
				findings = append(findings, diagnostic.Diagnostic{
					Document:   doc.Path,
					Line:       num,
					Severity:   diagnostic.Info,
					Category:   diagnostic.CategoryVagueDirective,
					Message:    fmt.Sprintf("Non-deterministic directive found: %q", strings.TrimSpace(m)),
					Suggestion: vagueSuggestion,
				})
				break
			}
		})
	}

	return findings
}
