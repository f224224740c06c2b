// Package engine orchestrates one lint run: discover files, parse them,
// run every enabled checker, then apply inline suppressions and produce a
// deterministic finding list.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agentstation/doclint/internal/checkers"
	"github.com/agentstation/doclint/internal/config"
	"github.com/agentstation/doclint/internal/matcher"
	"github.com/agentstation/doclint/internal/parser"
	"github.com/agentstation/doclint/internal/scanner"
	"github.com/agentstation/doclint/pkg/diagnostic"
	"github.com/agentstation/doclint/pkg/docs"
	"github.com/agentstation/doclint/pkg/errors"
	"github.com/agentstation/doclint/pkg/logging"
)

// Options configures a run.
type Options struct {
	// Root is the project directory to lint.
	Root   string
	Config config.Config
	// Logger defaults to the package logger when nil.
	Logger *zerolog.Logger
}

// Result is the outcome of one run.
type Result struct {
	Diagnostics []diagnostic.Diagnostic
	// FilesScanned counts the markdown files discovered.
	FilesScanned int
	// FilesParsed counts the files that parsed cleanly and were checked.
	FilesParsed int
}

// Run executes a full lint pass. Files that fail to parse are logged and
// skipped; a run that discovers no files at all is an error.
func Run(opts Options) (*Result, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("%w: missing project root", errors.ErrInvalidInput)
	}

	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	cfg := opts.Config

	scan, err := scanner.New(cfg.Include, cfg.Ignore, cfg.IgnoreFiles)
	if err != nil {
		return nil, err
	}
	paths, err := scan.Scan(opts.Root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w under %s", errors.ErrNoDocuments, opts.Root)
	}
	log.Debug().Int("files", len(paths)).Str("root", opts.Root).Msg("scan complete")

	documents := parseAll(log, opts.Root, paths)

	historical, err := matcher.NewPathSet(cfg.HistoricalFiles)
	if err != nil {
		return nil, err
	}

	list, err := checkers.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx := &checkers.Context{
		Documents:  documents,
		Historical: historical.MatchPath,
	}

	var findings []diagnostic.Diagnostic
	for _, checker := range list {
		found := checker.Check(ctx)
		log.Debug().Str("checker", checker.Name()).Int("findings", len(found)).Msg("checker done")
		findings = append(findings, found...)
	}

	suppressions := buildSuppressions(documents)
	kept := findings[:0]
	for _, d := range findings {
		if isSuppressed(suppressions, d.Document, d.Line, string(d.Category)) {
			continue
		}
		kept = append(kept, d)
	}

	diagnostic.Sort(kept)
	kept = diagnostic.Dedupe(kept)

	return &Result{
		Diagnostics:  kept,
		FilesScanned: len(paths),
		FilesParsed:  len(documents),
	}, nil
}

// parseAll reads and parses every discovered file. Failures are warnings,
// not fatal: one broken file should not block linting the rest.
func parseAll(log *zerolog.Logger, root string, paths []string) []docs.Document {
	p := parser.New()
	documents := make([]docs.Document, 0, len(paths))

	for _, rel := range paths {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			log.Warn().Err(err).Str("document", rel).Msg("cannot read file")
			continue
		}
		doc, err := p.Parse(rel, content)
		if err != nil {
			log.Warn().Err(err).Str("document", rel).Msg("cannot parse file")
			continue
		}
		documents = append(documents, doc)
	}

	return documents
}
