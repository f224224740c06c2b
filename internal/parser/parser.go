// Package parser turns markdown instruction files into the structured
// document model the checkers consume. Parsing happens once per file per
// run; everything downstream works on the resulting docs.Document.
package parser

import (
	"bytes"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/agentstation/doclint/pkg/docs"
	"github.com/agentstation/doclint/pkg/errors"
)

// vaguePhrases are hedging constructions that leave an instruction open to
// interpretation. Matching is case-insensitive against prose lines only.
var vaguePhrases = []string{
	"try to",
	"consider",
	"use your judgment",
	"if appropriate",
	"be helpful",
	"when possible",
	"when needed",
	"when necessary",
	"as needed",
	"as appropriate",
}

// suppressPattern recognizes inline control comments. The rule name is
// optional; without one the comment applies to every category.
var suppressPattern = regexp.MustCompile(`(?i)<!--\s*doclint-(disable-next-line|disable|enable)(?:\s+([A-Za-z0-9_:-]+))?\s*-->`)

// Parser converts markdown source into docs.Document values. It is
// stateless and safe for concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// New constructs a Parser with GFM table support enabled.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		),
	}
}

// Parse builds the structured document for one markdown file. The path is
// recorded verbatim for finding attribution. YAML/TOML frontmatter is
// stripped before markdown parsing but line numbers always refer to the
// original file.
func (p *Parser) Parse(path string, content []byte) (docs.Document, error) {
	rawLines := splitLines(content)

	body, lineOffset, err := stripFrontmatter(content)
	if err != nil {
		return docs.Document{}, errors.NewParseError(path, err)
	}

	doc := docs.Document{
		Path:     path,
		RawLines: rawLines,
	}

	root := p.md.Parser().Parse(text.NewReader(body))
	idx := newLineIndex(body)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			doc.Sections = append(doc.Sections, docs.Section{
				Level: node.Level,
				Title: nodeText(node, body),
				Line:  idx.lineAt(nodeOffset(node)) + lineOffset,
			})
		case *east.Table:
			table := extractTable(node, body, idx, lineOffset)
			if len(table.Headers) > 0 {
				doc.Tables = append(doc.Tables, table)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	closeSections(doc.Sections, len(rawLines))
	attachParentSections(doc.Sections, doc.Tables)

	doc.Directives = collectDirectives(rawLines)
	doc.Suppress = collectSuppressions(rawLines)

	return doc, nil
}

// stripFrontmatter removes a leading YAML or TOML frontmatter block and
// reports how many lines it occupied. Content without frontmatter passes
// through untouched; a malformed block is a parse failure.
func stripFrontmatter(content []byte) ([]byte, int, error) {
	var meta map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		return nil, 0, err
	}
	consumed := len(content) - len(rest)
	return rest, bytes.Count(content[:consumed], []byte("\n")), nil
}

// extractTable flattens a GFM table node into headers and data rows.
func extractTable(node *east.Table, source []byte, idx lineIndex, lineOffset int) docs.Table {
	table := docs.Table{Line: idx.lineAt(nodeOffset(node)) + lineOffset}

	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		switch r := row.(type) {
		case *east.TableHeader:
			table.Headers = rowCells(r, source)
		case *east.TableRow:
			table.Rows = append(table.Rows, rowCells(r, source))
		}
	}

	return table
}

func rowCells(row ast.Node, source []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, nodeText(cell, source))
	}
	return cells
}

// closeSections fills in EndLine for each section: the line before the next
// heading, or the last line of the document.
func closeSections(sections []docs.Section, totalLines int) {
	for i := range sections {
		if i+1 < len(sections) {
			sections[i].EndLine = sections[i+1].Line - 1
		} else {
			sections[i].EndLine = totalLines
		}
	}
}

// attachParentSections records on each table the title of the nearest
// heading above it. Sections and tables both arrive in document order.
func attachParentSections(sections []docs.Section, tables []docs.Table) {
	for i := range tables {
		for j := len(sections) - 1; j >= 0; j-- {
			if sections[j].Line < tables[i].Line {
				tables[i].ParentSection = sections[j].Title
				break
			}
		}
	}
}

// collectDirectives scans prose lines for vague hedging phrases. Fenced
// code, indented code, blockquotes, and table rows are skipped; at most one
// phrase is recorded per line.
func collectDirectives(rawLines []string) []docs.Directive {
	var directives []docs.Directive
	docs.NonCodeLines(rawLines, func(num int, line string) {
		if !docs.IsDirectiveLine(line) {
			return
		}
		lower := strings.ToLower(line)
		for _, phrase := range vaguePhrases {
			if strings.Contains(lower, phrase) {
				directives = append(directives, docs.Directive{Line: num, Matched: phrase})
				return
			}
		}
	})
	return directives
}

// collectSuppressions finds inline doclint control comments on any line,
// including inside code fences so examples can be annotated too.
func collectSuppressions(rawLines []string) []docs.SuppressComment {
	var comments []docs.SuppressComment
	for i, line := range rawLines {
		m := suppressPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		kind := docs.SuppressDisable
		switch strings.ToLower(m[1]) {
		case "disable-next-line":
			kind = docs.SuppressNextLine
		case "enable":
			kind = docs.SuppressEnable
		}
		comments = append(comments, docs.SuppressComment{
			Line: i + 1,
			Kind: kind,
			Rule: m[2],
		})
	}
	return comments
}

// nodeOffset returns the byte offset of a node's first content. Block nodes
// carry line segments; otherwise the first text descendant locates it.
func nodeOffset(n ast.Node) int {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			return lines.At(0).Start
		}
	}
	offset := -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok && t.Segment.Len() > 0 {
			offset = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return offset
}

// nodeText concatenates the raw text of every text descendant.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int // byte offset where each line begins
}

func newLineIndex(source []byte) lineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts}
}

// lineAt returns the 1-based line containing the offset. Negative offsets
// (nodes with no locatable content) map to line 1.
func (idx lineIndex) lineAt(offset int) int {
	if offset < 0 {
		return 1
	}
	return sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
}

// splitLines breaks content into lines without the trailing newline
// producing a phantom empty line.
func splitLines(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
