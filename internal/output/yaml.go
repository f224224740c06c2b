package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/doclint/pkg/diagnostic"
)

func renderYAML(w io.Writer, diags []diagnostic.Diagnostic) error {
	return yaml.NewEncoder(w).Encode(buildReport(diags))
}
