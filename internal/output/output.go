// Package output renders a finding list for humans (text), machines
// (json, yaml), and CI annotations (github).
package output

import (
	"fmt"
	"io"

	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/errors"
)

// Format selects a renderer.
type Format string

// Supported output formats.
const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatGitHub Format = "github"
)

// ParseFormat validates a --format value.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatYAML, FormatGitHub:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownFormat, name)
	}
}

// Render writes the diagnostics in the chosen format.
func Render(w io.Writer, format Format, diags []diagnostic.Diagnostic) error {
	switch format {
	case FormatText:
		return renderText(w, diags)
	case FormatJSON:
		return renderJSON(w, diags)
	case FormatYAML:
		return renderYAML(w, diags)
	case FormatGitHub:
		return renderGitHub(w, diags)
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownFormat, format)
	}
}

// report is the machine-readable payload shared by json and yaml.
type report struct {
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Summary     summary                 `json:"summary" yaml:"summary"`
}

type summary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Info     int `json:"info" yaml:"info"`
}

func buildReport(diags []diagnostic.Diagnostic) report {
	if diags == nil {
		diags = []diagnostic.Diagnostic{}
	}
	return report{
		Diagnostics: diags,
		Summary: summary{
			Errors:   diagnostic.Count(diags, diagnostic.Error),
			Warnings: diagnostic.Count(diags, diagnostic.Warning),
			Info:     diagnostic.Count(diags, diagnostic.Info),
		},
	}
}
