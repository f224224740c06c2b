// Package config loads and validates the .doclint.yaml project
// configuration. Absent keys keep their defaults, so a minimal file only
// has to state what differs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/agentstation/doclint/pkg/errors"
)

// DefaultFileName is the config file looked up in the project root when no
// explicit path is given.
const DefaultFileName = ".doclint.yaml"

// Config is the full project configuration.
type Config struct {
	// Include globs select which markdown files are linted. Matching is
	// case-insensitive against the bare filename or the root-relative path.
	Include []string `mapstructure:"include" yaml:"include"`
	// Ignore globs prune directories (and anything under them) during the
	// scan.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`
	// IgnoreFiles globs skip individual files entirely.
	IgnoreFiles []string `mapstructure:"ignore_files" yaml:"ignore_files"`
	// HistoricalFiles globs mark documents whose old enumerations are
	// expected to diverge; enum drift skips them.
	HistoricalFiles []string `mapstructure:"historical_files" yaml:"historical_files"`

	Checkers Checkers `mapstructure:"checkers" yaml:"checkers"`
}

// Checkers holds per-checker settings.
type Checkers struct {
	NamingInconsistency NamingConfig         `mapstructure:"naming_inconsistency" yaml:"naming_inconsistency"`
	EnumDrift           EnumDriftConfig      `mapstructure:"enum_drift" yaml:"enum_drift"`
	VagueDirective      VagueDirectiveConfig `mapstructure:"vague_directive" yaml:"vague_directive"`
	PlaceholderText     CheckerConfig        `mapstructure:"placeholder_text" yaml:"placeholder_text"`
	HeadingHierarchy    CheckerConfig        `mapstructure:"heading_hierarchy" yaml:"heading_hierarchy"`
	CustomPatterns      []CustomPattern      `mapstructure:"custom_patterns" yaml:"custom_patterns"`
}

// CheckerConfig is the settings every checker shares. An empty Scope means
// the checker sees every scanned document.
type CheckerConfig struct {
	Enabled bool     `mapstructure:"enabled" yaml:"enabled"`
	Scope   []string `mapstructure:"scope" yaml:"scope"`
}

// NamingConfig configures the naming-inconsistency checker.
type NamingConfig struct {
	CheckerConfig `mapstructure:",squash" yaml:",inline"`
	// SimilarityThreshold is the Jaro-Winkler score for near-miss infos.
	SimilarityThreshold float64 `mapstructure:"similarity_threshold" yaml:"similarity_threshold"`
}

// EnumDriftConfig configures the enum-drift checker.
type EnumDriftConfig struct {
	CheckerConfig `mapstructure:",squash" yaml:",inline"`
	// SectionSimilarityThreshold gates the single-shared-column table match.
	SectionSimilarityThreshold float64 `mapstructure:"section_similarity_threshold" yaml:"section_similarity_threshold"`
}

// VagueDirectiveConfig configures the vague-directive checker.
type VagueDirectiveConfig struct {
	CheckerConfig `mapstructure:",squash" yaml:",inline"`
	// ExtraPatterns are additional regexes flagged alongside the built-in
	// hedging phrases.
	ExtraPatterns []string `mapstructure:"extra_patterns" yaml:"extra_patterns"`
}

// CustomPattern is a user-defined regex checker. Severity defaults to
// warning when omitted.
type CustomPattern struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Pattern  string `mapstructure:"pattern" yaml:"pattern"`
	Severity string `mapstructure:"severity" yaml:"severity"`
	Message  string `mapstructure:"message" yaml:"message"`
}

// Default returns the configuration used when no file is present: the known
// AI instruction file locations, the usual build/VCS directories ignored,
// and every built-in checker enabled.
func Default() Config {
	return Config{
		Include: []string{
			"CLAUDE.md",
			"AGENTS.md",
			".claude/**",
			".github/copilot-instructions.md",
		},
		Ignore: []string{"node_modules", ".git", "target", "vendor"},
		HistoricalFiles: []string{
			"changelog*",
			"retro*",
			"history*",
			"archive*",
			"restart*",
		},
		Checkers: Checkers{
			NamingInconsistency: NamingConfig{CheckerConfig: CheckerConfig{Enabled: true}},
			EnumDrift:           EnumDriftConfig{CheckerConfig: CheckerConfig{Enabled: true}},
			VagueDirective:      VagueDirectiveConfig{CheckerConfig: CheckerConfig{Enabled: true}},
			PlaceholderText:     CheckerConfig{Enabled: true},
			HeadingHierarchy:    CheckerConfig{Enabled: true},
		},
	}
}

// Load reads configuration for a project. An explicit path must exist and
// parse; otherwise DefaultFileName is tried in the project root, and its
// absence just yields the defaults. DOCLINT_* environment variables override
// both (DOCLINT_CHECKERS_ENUM_DRIFT_ENABLED=false and friends).
func Load(path, root string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("DOCLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
	default:
		candidate := filepath.Join(root, DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			v.SetConfigFile(candidate)
		}
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.NewConfigError("file", "cannot read configuration", err)
		}
	}

	var cfg Config
	// Weakly typed input so env var strings decode into bools and floats.
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return Config{}, errors.NewConfigError("file", "cannot decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every known key so absent config keys keep their
// defaults and environment overrides bind.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("include", def.Include)
	v.SetDefault("ignore", def.Ignore)
	v.SetDefault("ignore_files", def.IgnoreFiles)
	v.SetDefault("historical_files", def.HistoricalFiles)
	v.SetDefault("checkers.naming_inconsistency.enabled", def.Checkers.NamingInconsistency.Enabled)
	v.SetDefault("checkers.naming_inconsistency.similarity_threshold", def.Checkers.NamingInconsistency.SimilarityThreshold)
	v.SetDefault("checkers.enum_drift.enabled", def.Checkers.EnumDrift.Enabled)
	v.SetDefault("checkers.enum_drift.section_similarity_threshold", def.Checkers.EnumDrift.SectionSimilarityThreshold)
	v.SetDefault("checkers.vague_directive.enabled", def.Checkers.VagueDirective.Enabled)
	v.SetDefault("checkers.placeholder_text.enabled", def.Checkers.PlaceholderText.Enabled)
	v.SetDefault("checkers.heading_hierarchy.enabled", def.Checkers.HeadingHierarchy.Enabled)
}

// Validate checks the parts of the configuration that can fail at runtime
// so problems surface before any document is scanned.
func (c Config) Validate() error {
	if t := c.Checkers.NamingInconsistency.SimilarityThreshold; t < 0 || t > 1 {
		return errors.NewConfigError("naming_inconsistency",
			fmt.Sprintf("similarity_threshold %v outside [0, 1]", t), nil)
	}
	if t := c.Checkers.EnumDrift.SectionSimilarityThreshold; t < 0 || t > 1 {
		return errors.NewConfigError("enum_drift",
			fmt.Sprintf("section_similarity_threshold %v outside [0, 1]", t), nil)
	}

	for _, p := range c.Checkers.VagueDirective.ExtraPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return errors.NewConfigError("vague_directive",
				fmt.Sprintf("invalid extra pattern %q", p), err)
		}
	}

	for _, cp := range c.Checkers.CustomPatterns {
		if cp.Name == "" {
			return errors.NewConfigError("custom_patterns", "pattern without a name", nil)
		}
		if _, err := regexp.Compile(cp.Pattern); err != nil {
			return errors.NewConfigError("custom_patterns",
				fmt.Sprintf("invalid pattern for %q", cp.Name), err)
		}
		switch cp.Severity {
		case "", "info", "warning", "error":
		default:
			return errors.NewConfigError("custom_patterns",
				fmt.Sprintf("unknown severity %q for %q", cp.Severity, cp.Name), nil)
		}
	}

	return nil
}

// DefaultYAML is the annotated template written by `doclint init`.
const DefaultYAML = `# doclint configuration

# Which files to lint (glob patterns, case-insensitive).
# Default: known AI instruction file locations.
# Set to ["**/*.md"] to lint all markdown files.
include:
  - CLAUDE.md
  - AGENTS.md
  - .claude/**
  - .github/copilot-instructions.md

# Directories pruned during scanning.
ignore:
  - node_modules
  - .git
  - target
  - vendor

# Individual files to skip entirely (glob patterns).
# ignore_files:
#   - docs/generated.md

# Files treated as historical records; enum drift skips them.
# historical_files:
#   - changelog*
#   - retro*

checkers:
  naming_inconsistency:
    enabled: true
    # scope limits a checker to matching files; empty means all.
    # scope: [CLAUDE.md, AGENTS.md]
    # similarity_threshold: 0.92

  enum_drift:
    enabled: true
    # section_similarity_threshold: 0.8

  vague_directive:
    enabled: true
    # extra_patterns:
    #   - (?i)\bmaybe\b

  placeholder_text:
    enabled: true

  heading_hierarchy:
    enabled: true

  # custom_patterns:
  #   - name: todo-comment
  #     pattern: (?i)\bTODO\b
  #     severity: warning
  #     message: TODO comment found
`
