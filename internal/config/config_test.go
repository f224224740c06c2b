package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/doclint/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Include, "CLAUDE.md")
	assert.Contains(t, cfg.Include, "AGENTS.md")
	assert.Contains(t, cfg.Ignore, "node_modules")
	assert.Contains(t, cfg.HistoricalFiles, "changelog*")

	assert.True(t, cfg.Checkers.NamingInconsistency.Enabled)
	assert.True(t, cfg.Checkers.EnumDrift.Enabled)
	assert.True(t, cfg.Checkers.VagueDirective.Enabled)
	assert.True(t, cfg.Checkers.PlaceholderText.Enabled)
	assert.True(t, cfg.Checkers.HeadingHierarchy.Enabled)
	assert.Empty(t, cfg.Checkers.CustomPatterns)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
include:
  - "**/*.md"
checkers:
  enum_drift:
    enabled: false
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"**/*.md"}, cfg.Include)
	assert.False(t, cfg.Checkers.EnumDrift.Enabled)
	assert.True(t, cfg.Checkers.NamingInconsistency.Enabled, "untouched checkers keep defaults")
	assert.Equal(t, Default().Ignore, cfg.Ignore, "omitted keys keep defaults")
}

func TestLoadFromProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFileName),
		[]byte("ignore: [build]\n"), 0o644))

	cfg, err := Load("", root)
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, cfg.Ignore)
}

func TestLoadScopeAndThreshold(t *testing.T) {
	path := writeConfig(t, `
checkers:
  naming_inconsistency:
    enabled: true
    scope: [CLAUDE.md, AGENTS.md]
    similarity_threshold: 0.95
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"CLAUDE.md", "AGENTS.md"}, cfg.Checkers.NamingInconsistency.Scope)
	assert.InDelta(t, 0.95, cfg.Checkers.NamingInconsistency.SimilarityThreshold, 1e-9)
}

func TestLoadCustomPatterns(t *testing.T) {
	path := writeConfig(t, `
checkers:
  custom_patterns:
    - name: todo-comment
      pattern: (?i)\bTODO\b
      severity: warning
      message: TODO comment found
    - name: fixme
      pattern: (?i)\bFIXME\b
      severity: error
      message: FIXME found
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	require.Len(t, cfg.Checkers.CustomPatterns, 2)
	assert.Equal(t, "todo-comment", cfg.Checkers.CustomPatterns[0].Name)
	assert.Equal(t, "error", cfg.Checkers.CustomPatterns[1].Severity)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DOCLINT_CHECKERS_ENUM_DRIFT_ENABLED", "false")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Checkers.EnumDrift.Enabled)
	assert.True(t, cfg.Checkers.NamingInconsistency.Enabled, "other checkers untouched")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("DOCLINT_CHECKERS_NAMING_INCONSISTENCY_SIMILARITY_THRESHOLD", "0.99")
	path := writeConfig(t, `
checkers:
  naming_inconsistency:
    similarity_threshold: 0.9
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.InDelta(t, 0.99, cfg.Checkers.NamingInconsistency.SimilarityThreshold, 1e-9)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "include: [unclosed\n")

	_, err := Load(path, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := Default()
	cfg.Checkers.NamingInconsistency.SimilarityThreshold = 1.5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPattern(t *testing.T) {
	cfg := Default()
	cfg.Checkers.CustomPatterns = []CustomPattern{{Name: "bad", Pattern: "([", Message: "x"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestValidateRejectsUnnamedPattern(t *testing.T) {
	cfg := Default()
	cfg.Checkers.CustomPatterns = []CustomPattern{{Pattern: "TODO", Message: "x"}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownSeverity(t *testing.T) {
	cfg := Default()
	cfg.Checkers.CustomPatterns = []CustomPattern{{Name: "x", Pattern: "x", Severity: "fatal"}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadExtraPattern(t *testing.T) {
	cfg := Default()
	cfg.Checkers.VagueDirective.ExtraPatterns = []string{"(("}
	assert.Error(t, cfg.Validate())
}

func TestDefaultYAMLTemplateLoads(t *testing.T) {
	path := writeConfig(t, DefaultYAML)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, Default().Include, cfg.Include)
	assert.True(t, cfg.Checkers.EnumDrift.Enabled)
	require.NoError(t, cfg.Validate())
}
