package matcher

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		patternType PatternType
		opts        Options
		wantErr     bool
	}{
		{
			name:        "valid glob pattern",
			pattern:     "*.md",
			patternType: Glob,
			wantErr:     false,
		},
		{
			name:        "valid regex pattern",
			pattern:     "^docs/.*",
			patternType: Regex,
			wantErr:     false,
		},
		{
			name:        "invalid regex pattern",
			pattern:     "[unclosed",
			patternType: Regex,
			wantErr:     true,
		},
		{
			name:        "auto detect glob",
			pattern:     "*.md",
			patternType: Auto,
			wantErr:     false,
		},
		{
			name:        "auto detect regex",
			pattern:     "^docs\\d+$",
			patternType: Auto,
			wantErr:     false,
		},
		{
			name:        "case insensitive option",
			pattern:     "claude.md",
			patternType: Glob,
			opts:        Options{CaseInsensitive: true},
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.patternType, tt.pattern, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"*.md", "readme.md", true},
		{"*.md", "docs/readme.md", false}, // single star stops at separators
		{"**/*.md", "docs/guide/readme.md", true},
		{".claude/**", ".claude/agents/reviewer.md", true},
		{".claude/**", ".claude", false},
		{"changelog*", "changelog-2024.md", true},
		{"doc?.md", "doc1.md", true},
		{"doc?.md", "doc12.md", false},
		{"[abc]*.md", "a-notes.md", true},
		{"[abc]*.md", "d-notes.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			m, err := New(Glob, tt.pattern, Options{})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := m.Match(tt.input); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPathSet(t *testing.T) {
	ps, err := NewPathSet([]string{"CLAUDE.md", "changelog*", "docs/history.md"})
	if err != nil {
		t.Fatalf("NewPathSet() error = %v", err)
	}

	tests := []struct {
		relPath string
		want    bool
	}{
		{"CLAUDE.md", true},
		{"nested/CLAUDE.md", true}, // bare filename matches anywhere
		{"claude.md", true},        // case-insensitive
		{"changelog.md", true},
		{"CHANGELOG.md", true},
		{"retro-2024.md", false},
		{"docs/history.md", true},
		{"history.md", false}, // path pattern does not match bare root file
	}

	for _, tt := range tests {
		t.Run(tt.relPath, func(t *testing.T) {
			if got := ps.MatchPath(tt.relPath); got != tt.want {
				t.Errorf("MatchPath(%q) = %v, want %v", tt.relPath, got, tt.want)
			}
		})
	}
}

func TestPathSetEmpty(t *testing.T) {
	ps, err := NewPathSet(nil)
	if err != nil {
		t.Fatalf("NewPathSet() error = %v", err)
	}
	if !ps.Empty() {
		t.Error("Empty() = false, want true")
	}
	if ps.MatchPath("anything.md") {
		t.Error("empty set should match nothing")
	}
}

func TestPathSetInvalidPattern(t *testing.T) {
	// Unterminated character classes are treated as literals, not errors
	ps, err := NewPathSet([]string{"[abc"})
	if err != nil {
		t.Fatalf("NewPathSet() error = %v", err)
	}
	if !ps.MatchPath("[abc") {
		t.Error("unterminated class should match itself literally")
	}
}

func TestDetectPatternType(t *testing.T) {
	tests := []struct {
		pattern string
		want    PatternType
	}{
		{"*.md", Glob},
		{"^test\\d+$", Regex},
		{"plain", Glob},
		{"(?i)claude", Regex},
	}

	for _, tt := range tests {
		if got := detectPatternType(tt.pattern); got != tt.want {
			t.Errorf("detectPatternType(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}
