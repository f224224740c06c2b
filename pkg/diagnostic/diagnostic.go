// Package diagnostic defines the finding types shared by every checker and
// the ordering/deduplication rules that make runs reproducible.
package diagnostic

import (
	"fmt"
	"sort"
)

// Severity classifies how actionable a diagnostic is. The zero value is
// Info; severities order Info < Warning < Error.
type Severity int

const (
	// Info is advisory output that never fails a run by default.
	Info Severity = iota
	// Warning indicates a likely documentation defect.
	Warning
	// Error indicates a defect that should fail CI.
	Error
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// their lowercase names in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a lowercase severity name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("unknown severity %q", name)
	}
}

// Category identifies the checker that produced a diagnostic.
type Category string

// Checker categories.
const (
	CategoryNaming           Category = "naming-inconsistency"
	CategoryEnumDrift        Category = "enum-drift"
	CategoryVagueDirective   Category = "vague-directive"
	CategoryPlaceholderText  Category = "placeholder-text"
	CategoryHeadingHierarchy Category = "heading-hierarchy"
)

// CustomCategory returns the category for a user-defined pattern.
func CustomCategory(name string) Category {
	return Category("custom:" + name)
}

// Diagnostic is one finding attributed to a document line.
type Diagnostic struct {
	Document   string   `json:"document" yaml:"document"`
	Line       int      `json:"line" yaml:"line"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Category   Category `json:"category" yaml:"category"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Key is the identity used for deduplication. Two diagnostics with the same
// key are considered the same finding regardless of how they were produced.
type Key struct {
	Document string
	Line     int
	Message  string
}

// Key returns the diagnostic's dedup identity.
func (d Diagnostic) Key() Key {
	return Key{Document: d.Document, Line: d.Line, Message: d.Message}
}

// Sort orders diagnostics by (document, line, message). Map-driven checkers
// emit in nondeterministic order; callers sort before presenting anything.
func Sort(diags []Diagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Document != b.Document {
			return a.Document < b.Document
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Message < b.Message
	})
}

// Dedupe removes diagnostics whose (document, line, message) triple has
// already been seen, preserving first occurrence order.
func Dedupe(diags []Diagnostic) []Diagnostic {
	seen := make(map[Key]struct{}, len(diags))
	out := diags[:0]
	for _, d := range diags {
		k := d.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Count returns how many diagnostics have the given severity.
func Count(diags []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// AnyAtLeast reports whether any diagnostic meets the severity threshold.
func AnyAtLeast(diags []Diagnostic, threshold Severity) bool {
	for _, d := range diags {
		if d.Severity >= threshold {
			return true
		}
	}
	return false
}
