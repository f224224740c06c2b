// Package checkers hosts the individual lint rules. Each checker receives
// the full parsed corpus so cross-document rules and per-line rules share
// one interface.
package checkers

import (
	"github.com/agentstation/doclint/internal/config"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
)

// Context is the immutable input every checker sees for one run.
type Context struct {
	Documents []docs.Document
	// Historical reports whether a document records past state (changelogs,
	// retros). Checkers comparing current values across documents skip
	// historical ones; nil means no document is historical.
	Historical func(path string) bool
}

// Checker is one lint rule over the whole corpus.
type Checker interface {
	// Name is the rule identifier used in categories and suppressions.
	Name() string
	Check(ctx *Context) []diagnostic.Diagnostic
}

// FromConfig builds the enabled checkers in a stable order. Scope globs and
// pattern regexes are compiled here so misconfiguration fails the run
// before any document is read.
func FromConfig(cfg config.Config) ([]Checker, error) {
	var list []Checker

	if c := cfg.Checkers.NamingInconsistency; c.Enabled {
		checker, err := NewNaming(c.Scope, c.SimilarityThreshold)
		if err != nil {
			return nil, err
		}
		list = append(list, checker)
	}
	if c := cfg.Checkers.EnumDrift; c.Enabled {
		checker, err := NewEnumDrift(c.Scope, c.SectionSimilarityThreshold)
		if err != nil {
			return nil, err
		}
		list = append(list, checker)
	}
	if c := cfg.Checkers.VagueDirective; c.Enabled {
		checker, err := NewVagueDirective(c.Scope, c.ExtraPatterns)
		if err != nil {
			return nil, err
		}
		list = append(list, checker)
	}
	if c := cfg.Checkers.PlaceholderText; c.Enabled {
		checker, err := NewPlaceholderText(c.Scope)
		if err != nil {
			return nil, err
		}
		list = append(list, checker)
	}
	if c := cfg.Checkers.HeadingHierarchy; c.Enabled {
		checker, err := NewHeadingHierarchy(c.Scope)
		if err != nil {
			return nil, err
		}
		list = append(list, checker)
	}
	if patterns := cfg.Checkers.CustomPatterns; len(patterns) > 0 {
		checker, err := NewCustomPatterns(patterns)
		if err != nil {
			return nil, err
		}
		list = append(list, checker)
	}

	return list, nil
}
