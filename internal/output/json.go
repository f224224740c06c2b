package output

import (
	"encoding/json"
	"io"

	"github.com/agentstation/doclint/pkg/diagnostic"
)

func renderJSON(w io.Writer, diags []diagnostic.Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildReport(diags))
}
