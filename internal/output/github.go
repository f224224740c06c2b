package output

import (
	"fmt"
	"io"

	"github.com/agentstation/doclint/pkg/diagnostic"
)

// renderGitHub emits GitHub Actions workflow commands, one annotation per
// finding. Suggestions ride along via the %0A escaped-newline convention.
func renderGitHub(w io.Writer, diags []diagnostic.Diagnostic) error {
	for _, d := range diags {
		level := "notice"
		switch d.Severity {
		case diagnostic.Error:
			level = "error"
		case diagnostic.Warning:
			level = "warning"
		}

		if _, err := fmt.Fprintf(w, "::%s file=%s,line=%d,title=%s::%s",
			level, d.Document, d.Line, d.Category, d.Message); err != nil {
			return err
		}
		if d.Suggestion != "" {
			if _, err := fmt.Fprintf(w, "%%0Ahelp: %s", d.Suggestion); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
