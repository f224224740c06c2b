package checkers

import (
	"github.com/agentstation/doclint/pkg/analysis"
	"github.com/agentstation/doclint/pkg/diagnostic"
)

// Naming flags the same concept spelled differently across documents:
// exact variants of one normalized key as warnings, and fuzzy near-misses
// between distinct keys as infos.
type Naming struct {
	scope     *analysis.ScopeFilter
	threshold float64
}

// NewNaming compiles the scope globs. A threshold of 0 keeps the default.
func NewNaming(scope []string, threshold float64) (*Naming, error) {
	filter, err := analysis.NewScopeFilter(scope)
	if err != nil {
		return nil, err
	}
	return &Naming{scope: filter, threshold: threshold}, nil
}

// Name implements Checker.
func (*Naming) Name() string { return string(diagnostic.CategoryNaming) }

// Check implements Checker.
func (c *Naming) Check(ctx *Context) []diagnostic.Diagnostic {
	return analysis.NamingFindings(ctx.Documents, analysis.NamingOptions{
		Scope:               c.scope,
		SimilarityThreshold: c.threshold,
	})
}
