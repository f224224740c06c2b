package checkers

import (
	"regexp"

	"github.com/agentstation/doclint/internal/config"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
	"github.com/agentstation/doclint/pkg/errors"
)

// CustomPatterns runs user-defined regexes from the configuration against
// prose lines. Each pattern gets its own category so findings can be
// suppressed individually.
type CustomPatterns struct {
	patterns []compiledPattern
}

type compiledPattern struct {
	name     string
	regex    *regexp.Regexp
	severity diagnostic.Severity
	message  string
}

// NewCustomPatterns compiles every configured pattern. Severity defaults to
// warning when omitted.
func NewCustomPatterns(configs []config.CustomPattern) (*CustomPatterns, error) {
	patterns := make([]compiledPattern, 0, len(configs))
	for _, c := range configs {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, errors.NewPatternError(c.Pattern, err)
		}
		severity := diagnostic.Warning
		if c.Severity != "" {
			severity, err = diagnostic.ParseSeverity(c.Severity)
			if err != nil {
				return nil, errors.NewConfigError("custom_patterns", "unknown severity", err)
			}
		}
		patterns = append(patterns, compiledPattern{
			name:     c.Name,
			regex:    re,
			severity: severity,
			message:  c.Message,
		})
	}
	return &CustomPatterns{patterns: patterns}, nil
}

// Name implements Checker.
func (*CustomPatterns) Name() string { return "custom-patterns" }

// Check implements Checker.
func (c *CustomPatterns) Check(ctx *Context) []diagnostic.Diagnostic {
	var findings []diagnostic.Diagnostic

	for i := range ctx.Documents {
		doc := &ctx.Documents[i]
		docs.NonCodeLines(doc.RawLines, func(num int, line string) {
			for _, pattern := range c.patterns {
				if !pattern.regex.MatchString(line) {
					continue
				}
				findings = append(findings, diagnostic.Diagnostic{
					Document: doc.Path,
					Line:     num,
					Severity: pattern.severity,
					Category: diagnostic.CustomCategory(pattern.name),
					Message:  pattern.message,
				})
			}
		})
	}

	return findings
}
