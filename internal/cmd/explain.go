package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentstation/doclint/pkg/errors"
)

// ruleDocs holds a one-line summary and a longer rationale per rule.
var ruleDocs = []struct {
	name    string
	summary string
	detail  string
}{
	{
		name:    "naming-inconsistency",
		summary: "Same concept named differently across files",
		detail: `naming-inconsistency: Flags one concept spelled several ways across documents.

When CLAUDE.md documents an "api_key" column and AGENTS.md calls the same
thing "apiKey", an agent reading both has to guess whether they are the
same setting. Identifiers are normalized (case, separators, acronym
boundaries) and clustered; different spellings of one normalized key are
warnings, and suspiciously similar keys ("error_handler" vs
"error_handling") are infos.

Severity: warning (exact variants), info (near misses)
Config: checkers.naming_inconsistency (scope, similarity_threshold)`,
	},
	{
		name:    "enum-drift",
		summary: "Tables with matching columns but divergent values",
		detail: `enum-drift: Compares the value sets of matching table columns across files.

Two documents each carry a status table; one gains an "archived" state and
the other never learns about it. Tables are matched by shared normalized
headers (two shared columns, or one plus near-identical parent sections),
then each shared column's value sets are diffed both ways.

Severity: warning
Skipped for: historical files (changelogs, retros)
Config: checkers.enum_drift (scope, section_similarity_threshold)`,
	},
	{
		name:    "vague-directive",
		summary: "Detects non-deterministic language in instructions",
		detail: `vague-directive: Detects hedging language in agent instructions.

Phrases like "try to", "use your judgment", and "as appropriate" leave the
behavior up to the agent's interpretation, which varies between runs.
Deterministic instructions produce deterministic agents.

Severity: info
Config: checkers.vague_directive (scope, extra_patterns)`,
	},
	{
		name:    "placeholder-text",
		summary: "Detects leftover placeholders like [TODO], [TBD], etc.",
		detail: `placeholder-text: Warns on unfinished content left in shipped instructions.

[TODO], [TBD], [FIXME], [insert ...], trailing ellipses, and a bare "etc."
all mark spots the author meant to come back to. An "etc." that closes a
real enumeration (three or more items) is accepted.

Severity: warning
Config: checkers.placeholder_text (scope)`,
	},
	{
		name:    "heading-hierarchy",
		summary: "Detects skipped heading levels in markdown",
		detail: `heading-hierarchy: Flags heading levels that skip a step (h2 to h4).

A skipped level usually means a heading was deleted or mistyped, which
breaks outline-based navigation and section extraction.

Severity: info
Config: checkers.heading_hierarchy (scope)`,
	},
	{
		name:    "custom",
		summary: "User-defined regex patterns from config",
		detail: `custom: Runs regexes from checkers.custom_patterns against prose lines.

Each pattern has a name, a severity, and a message; findings carry the
category "custom:<name>" so they can be suppressed individually.

Config: checkers.custom_patterns`,
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [rule]",
	Short: "Explain what a checker does and why it matters (omit rule to list all)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "Available rules:")
		fmt.Fprintln(out)
		sorted := make([]int, 0, len(ruleDocs))
		for i := range ruleDocs {
			sorted = append(sorted, i)
		}
		sort.Slice(sorted, func(a, b int) bool { return ruleDocs[sorted[a]].name < ruleDocs[sorted[b]].name })
		for _, i := range sorted {
			fmt.Fprintf(out, "  %-24s %s\n", ruleDocs[i].name, ruleDocs[i].summary)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run `doclint explain <rule>` for details.")
		return nil
	}

	for _, doc := range ruleDocs {
		if doc.name == args[0] {
			fmt.Fprintln(out, doc.detail)
			return nil
		}
	}
	return fmt.Errorf("%w: %q (run `doclint explain` to list rules)", errors.ErrUnknownRule, args[0])
}
