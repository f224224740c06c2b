package checkers

import (
	"github.com/agentstation/doclint/pkg/analysis"
	"github.com/agentstation/doclint/pkg/diagnostic"
)

// EnumDrift compares the value sets of matching table columns across
// documents and warns when they have diverged.
type EnumDrift struct {
	scope     *analysis.ScopeFilter
	threshold float64
}

// NewEnumDrift compiles the scope globs. A threshold of 0 keeps the default
// section-similarity gate.
func NewEnumDrift(scope []string, threshold float64) (*EnumDrift, error) {
	filter, err := analysis.NewScopeFilter(scope)
	if err != nil {
		return nil, err
	}
	return &EnumDrift{scope: filter, threshold: threshold}, nil
}

// Name implements Checker.
func (*EnumDrift) Name() string { return string(diagnostic.CategoryEnumDrift) }

// Check implements Checker.
func (c *EnumDrift) Check(ctx *Context) []diagnostic.Diagnostic {
	return analysis.DriftFindings(ctx.Documents, analysis.DriftOptions{
		Scope:                      c.scope,
		Historical:                 ctx.Historical,
		SectionSimilarityThreshold: c.threshold,
	})
}
