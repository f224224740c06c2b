package analysis

import (
	"github.com/agentstation/doclint/internal/matcher"
)

// ScopeFilter restricts which documents participate in a cross-document
// comparison. An empty filter includes everything.
type ScopeFilter struct {
	set *matcher.PathSet
}

// NewScopeFilter compiles the given glob patterns into a filter. Patterns
// match case-insensitively against the bare filename or the root-relative
// document path.
func NewScopeFilter(patterns []string) (*ScopeFilter, error) {
	set, err := matcher.NewPathSet(patterns)
	if err != nil {
		return nil, err
	}
	return &ScopeFilter{set: set}, nil
}

// Includes reports whether the document path participates.
func (f *ScopeFilter) Includes(path string) bool {
	if f == nil || f.set == nil || f.set.Empty() {
		return true
	}
	return f.set.MatchPath(path)
}
