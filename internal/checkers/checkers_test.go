package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/doclint/internal/config"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
)

func ctxWith(documents ...docs.Document) *Context {
	return &Context{Documents: documents}
}

func TestFromConfigDefaults(t *testing.T) {
	list, err := FromConfig(config.Default())
	require.NoError(t, err)

	var names []string
	for _, c := range list {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{
		"naming-inconsistency",
		"enum-drift",
		"vague-directive",
		"placeholder-text",
		"heading-hierarchy",
	}, names)
}

func TestFromConfigDisabledCheckerOmitted(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.EnumDrift.Enabled = false

	list, err := FromConfig(cfg)
	require.NoError(t, err)

	for _, c := range list {
		assert.NotEqual(t, "enum-drift", c.Name())
	}
}

func TestFromConfigCustomPatterns(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.CustomPatterns = []config.CustomPattern{
		{Name: "todo", Pattern: `(?i)\bTODO\b`, Message: "TODO found"},
	}

	list, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "custom-patterns", list[len(list)-1].Name())
}

func TestFromConfigBadScope(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.NamingInconsistency.Scope = []string{"[z-a]"}

	_, err := FromConfig(cfg)
	assert.Error(t, err)
}

func TestNamingChecker(t *testing.T) {
	checker, err := NewNaming(nil, 0)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(
		docs.Document{Path: "CLAUDE.md", Tables: []docs.Table{{Headers: []string{"api_key"}, Line: 5}}},
		docs.Document{Path: "AGENTS.md", Tables: []docs.Table{{Headers: []string{"apiKey"}, Line: 3}}},
	))

	require.NotEmpty(t, findings)
	assert.Equal(t, diagnostic.CategoryNaming, findings[0].Category)
}

func TestEnumDriftCheckerHonorsHistorical(t *testing.T) {
	checker, err := NewEnumDrift(nil, 0)
	require.NoError(t, err)

	table := func(extra string) []docs.Table {
		return []docs.Table{{
			Headers:       []string{"Status", "Action"},
			Rows:          [][]string{{"active", "go"}, {extra, "stop"}},
			Line:          4,
			ParentSection: "States",
		}}
	}
	ctx := &Context{
		Documents: []docs.Document{
			{Path: "CLAUDE.md", Tables: table("pending")},
			{Path: "changelog.md", Tables: table("archived")},
		},
		Historical: func(path string) bool { return path == "changelog.md" },
	}

	assert.Empty(t, checker.Check(ctx))

	ctx.Historical = nil
	assert.NotEmpty(t, checker.Check(ctx))
}

func TestVagueDirectiveBuiltins(t *testing.T) {
	checker, err := NewVagueDirective(nil, nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:       "CLAUDE.md",
		Directives: []docs.Directive{{Line: 5, Matched: "try to"}},
	}))

	require.Len(t, findings, 1)
	assert.Equal(t, diagnostic.Info, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "try to")
	assert.Equal(t, 5, findings[0].Line)
}

func TestVagueDirectiveExtraPatterns(t *testing.T) {
	checker, err := NewVagueDirective(nil, []string{`(?i)\bmaybe\b`})
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:     "CLAUDE.md",
		RawLines: []string{"# Title", "Maybe do the thing.", "```", "maybe not here", "```"},
	}))

	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Line)
	assert.Contains(t, findings[0].Message, "Maybe")
}

func TestVagueDirectiveInvalidExtraPattern(t *testing.T) {
	_, err := NewVagueDirective(nil, []string{"(("})
	assert.Error(t, err)
}

func TestPlaceholderTextDetected(t *testing.T) {
	checker, err := NewPlaceholderText(nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:     "CLAUDE.md",
		RawLines: []string{"# Title", "[TODO] implement this"},
	}))

	require.Len(t, findings, 1)
	assert.Equal(t, diagnostic.Warning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "[TODO]")
}

func TestPlaceholderEtcAfterEnumerationAllowed(t *testing.T) {
	checker, err := NewPlaceholderText(nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path: "CLAUDE.md",
		RawLines: []string{
			"Handles markdown, YAML, JSON, etc.",
			"Just do whatever etc.",
		},
	}))

	require.Len(t, findings, 1, "bare etc. flagged, enumerated etc. allowed")
	assert.Equal(t, 2, findings[0].Line)
}

func TestPlaceholderEtcWrappedEnumerationAllowed(t *testing.T) {
	checker, err := NewPlaceholderText(nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path: "CLAUDE.md",
		RawLines: []string{
			"Useful for analysis or review or",
			"debugging etc.",
		},
	}))

	assert.Empty(t, findings)
}

func TestPlaceholderTrailingEllipsis(t *testing.T) {
	checker, err := NewPlaceholderText(nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:     "CLAUDE.md",
		RawLines: []string{"And then more steps..."},
	}))

	require.Len(t, findings, 1)
}

func TestHeadingHierarchySkipFlagged(t *testing.T) {
	checker, err := NewHeadingHierarchy(nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path: "CLAUDE.md",
		Sections: []docs.Section{
			{Level: 1, Title: "Top", Line: 1},
			{Level: 3, Title: "Deep", Line: 5},
		},
	}))

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "h1 to h3")
	assert.Contains(t, findings[0].Message, "Deep")
}

func TestHeadingHierarchyStepDownAllowed(t *testing.T) {
	checker, err := NewHeadingHierarchy(nil)
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path: "CLAUDE.md",
		Sections: []docs.Section{
			{Level: 1, Title: "Top", Line: 1},
			{Level: 2, Title: "Mid", Line: 3},
			{Level: 1, Title: "Next", Line: 9},
		},
	}))

	assert.Empty(t, findings, "going back up is always fine")
}

func TestCustomPatternsMatch(t *testing.T) {
	checker, err := NewCustomPatterns([]config.CustomPattern{
		{Name: "todo", Pattern: `(?i)\bTODO\b`, Severity: "error", Message: "TODO found"},
	})
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:     "CLAUDE.md",
		RawLines: []string{"# Title", "TODO: fix this"},
	}))

	require.Len(t, findings, 1)
	assert.Equal(t, diagnostic.Error, findings[0].Severity)
	assert.Equal(t, diagnostic.CustomCategory("todo"), findings[0].Category)
	assert.Equal(t, "TODO found", findings[0].Message)
}

func TestCustomPatternsDefaultSeverity(t *testing.T) {
	checker, err := NewCustomPatterns([]config.CustomPattern{
		{Name: "todo", Pattern: "TODO", Message: "TODO found"},
	})
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:     "CLAUDE.md",
		RawLines: []string{"TODO"},
	}))

	require.Len(t, findings, 1)
	assert.Equal(t, diagnostic.Warning, findings[0].Severity)
}

func TestScopeLimitsLineCheckers(t *testing.T) {
	checker, err := NewPlaceholderText([]string{"CLAUDE.md"})
	require.NoError(t, err)

	findings := checker.Check(ctxWith(docs.Document{
		Path:     "docs/notes.md",
		RawLines: []string{"[TODO] later"},
	}))

	assert.Empty(t, findings)
}
