// Package matcher provides pattern matching for document paths using glob
// and regex patterns. Globs support ** for directory recursion and are
// compiled once; scope and scan filters are built on top of it.
package matcher

import (
	"regexp"
	"strings"

	"github.com/agentstation/doclint/pkg/errors"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, **, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto attempts to detect the pattern type.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher matches a single pre-compiled pattern against input strings.
type Matcher struct {
	pattern     string
	patternType PatternType
	compiled    *regexp.Regexp
}

// Options configures matcher behavior.
type Options struct {
	// CaseInsensitive makes matching case-insensitive.
	CaseInsensitive bool
	// Anchored adds ^ and $ to regex patterns if not present. Globs are
	// always anchored.
	Anchored bool
}

// New creates a Matcher with the specified pattern and type.
func New(patternType PatternType, pattern string, opts Options) (*Matcher, error) {
	if patternType == Auto {
		patternType = detectPatternType(pattern)
	}

	var expr string
	switch patternType {
	case Glob:
		expr = GlobToRegex(pattern)
	case Regex:
		expr = pattern
		if opts.Anchored {
			if !strings.HasPrefix(expr, "^") {
				expr = "^" + expr
			}
			if !strings.HasSuffix(expr, "$") {
				expr = expr + "$"
			}
		}
	default:
		return nil, errors.NewPatternError(pattern, errors.ErrInvalidPattern)
	}

	if opts.CaseInsensitive && !strings.HasPrefix(expr, "(?i)") {
		expr = "(?i)" + expr
	}

	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.NewPatternError(pattern, err)
	}

	return &Matcher{
		pattern:     pattern,
		patternType: patternType,
		compiled:    compiled,
	}, nil
}

// Match checks if the input matches the pattern.
func (m *Matcher) Match(input string) bool {
	return m.compiled.MatchString(input)
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *Matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType attempts to detect if a pattern is glob or regex.
func detectPatternType(pattern string) PatternType {
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s", "\\D", "\\W", "\\S",
		"(?:", "(?i)", "(?m)", "(?s)",
		"{", "}", "+", "|", "(", ")",
	}

	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}

	return Glob
}

// GlobToRegex converts a glob pattern to an anchored regex pattern.
// `**` crosses path separators, `*` and `?` do not.
func GlobToRegex(glob string) string {
	var regex strings.Builder
	regex.WriteString("^")

	for i := 0; i < len(glob); i++ {
		switch glob[i] {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				regex.WriteString(".*")
				i++
				// Collapse "**/" so ".claude/**" also matches ".claude" contents
				if i+1 < len(glob) && glob[i+1] == '/' {
					i++
				}
			} else {
				regex.WriteString("[^/]*")
			}
		case '?':
			regex.WriteString("[^/]")
		case '[':
			j := i + 1
			if j < len(glob) && (glob[j] == '!' || glob[j] == '^') {
				regex.WriteString("[^")
				j++
			} else {
				regex.WriteString("[")
			}

			for ; j < len(glob) && glob[j] != ']'; j++ {
				if glob[j] == '\\' {
					regex.WriteByte(glob[j])
					j++
					if j < len(glob) {
						regex.WriteByte(glob[j])
					}
				} else {
					regex.WriteByte(glob[j])
				}
			}

			if j < len(glob) {
				regex.WriteString("]")
				i = j
			} else {
				// Unterminated class: treat the bracket literally
				regex.WriteString("\\[")
			}
		case '\\':
			if i+1 < len(glob) {
				i++
				regex.WriteString(regexp.QuoteMeta(string(glob[i])))
			}
		default:
			regex.WriteString(regexp.QuoteMeta(string(glob[i])))
		}
	}

	regex.WriteString("$")
	return regex.String()
}

// PathSet matches document paths against a set of glob patterns. A path
// matches when any pattern matches either its bare filename or the full
// root-relative path, case-insensitively — the same two-way test authors
// expect from ignore files.
type PathSet struct {
	matchers []*Matcher
}

// NewPathSet compiles the given glob patterns. Patterns that fail to
// compile are reported, not silently dropped.
func NewPathSet(patterns []string) (*PathSet, error) {
	ps := &PathSet{matchers: make([]*Matcher, 0, len(patterns))}
	for _, pattern := range patterns {
		m, err := New(Glob, pattern, Options{CaseInsensitive: true})
		if err != nil {
			return nil, err
		}
		ps.matchers = append(ps.matchers, m)
	}
	return ps, nil
}

// Empty reports whether the set has no patterns.
func (ps *PathSet) Empty() bool {
	return len(ps.matchers) == 0
}

// MatchPath checks a root-relative path (forward slashes) against the set.
func (ps *PathSet) MatchPath(relPath string) bool {
	name := relPath
	if idx := strings.LastIndexByte(relPath, '/'); idx >= 0 {
		name = relPath[idx+1:]
	}
	for _, m := range ps.matchers {
		if m.Match(name) || m.Match(relPath) {
			return true
		}
	}
	return false
}
