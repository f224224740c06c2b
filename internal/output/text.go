package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agentstation/doclint/pkg/diagnostic"
)

// infoDisplayLimit truncates very chatty info categories in text output;
// machine formats always carry everything.
const infoDisplayLimit = 10

func renderText(w io.Writer, diags []diagnostic.Diagnostic) error {
	rule := "  " + strings.Repeat("━", 50)

	if len(diags) == 0 {
		_, err := fmt.Fprintf(w, "\n%s\n  no issues found\n\n", rule)
		return err
	}

	byCategory := make(map[diagnostic.Category][]diagnostic.Diagnostic)
	files := make(map[string]struct{})
	for _, d := range diags {
		byCategory[d.Category] = append(byCategory[d.Category], d)
		files[d.Document] = struct{}{}
	}

	var parts []string
	if n := diagnostic.Count(diags, diagnostic.Error); n > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", n))
	}
	if n := diagnostic.Count(diags, diagnostic.Warning); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", n))
	}
	if n := diagnostic.Count(diags, diagnostic.Info); n > 0 {
		parts = append(parts, fmt.Sprintf("%d info", n))
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  %s across %d files\n", strings.Join(parts, ", "), len(files))
	fmt.Fprintf(w, "%s\n", rule)

	// Most severe categories first, names breaking ties.
	categories := make([]diagnostic.Category, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := topSeverity(byCategory[categories[i]]), topSeverity(byCategory[categories[j]])
		if a != b {
			return a > b
		}
		return categories[i] < categories[j]
	})

	for _, cat := range categories {
		catDiags := byCategory[cat]
		severity := topSeverity(catDiags)

		icon := "ℹ"
		switch severity {
		case diagnostic.Error:
			icon = "✗"
		case diagnostic.Warning:
			icon = "⚠"
		}

		fmt.Fprintf(w, "\n  %s %s (%d)\n", icon, cat, len(catDiags))

		limit := len(catDiags)
		if severity == diagnostic.Info && len(catDiags) > 2*infoDisplayLimit {
			limit = infoDisplayLimit
		}

		shown := 0
		lastFile := ""
		for _, d := range catDiags {
			if shown >= limit {
				break
			}
			if d.Document != lastFile {
				fmt.Fprintf(w, "    %s\n", d.Document)
				lastFile = d.Document
			}
			fmt.Fprintf(w, "      L%-4d %s\n", d.Line, d.Message)
			shown++
		}
		if len(catDiags) > limit {
			fmt.Fprintf(w, "    ... and %d more (use --format json for full list)\n", len(catDiags)-limit)
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}

func topSeverity(diags []diagnostic.Diagnostic) diagnostic.Severity {
	top := diagnostic.Info
	for _, d := range diags {
		if d.Severity > top {
			top = d.Severity
		}
	}
	return top
}
