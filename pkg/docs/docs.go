// Package docs defines the structured representation of a parsed
// instruction document. These types are the contract between the markdown
// parser and the checkers: they are produced once per analysis run and are
// never mutated afterwards.
package docs

// Document is one parsed markdown file. Path is the document's logical
// path relative to the project root and is used for scope filtering and
// finding attribution.
type Document struct {
	Path       string
	Sections   []Section
	Tables     []Table
	Directives []Directive
	Suppress   []SuppressComment
	RawLines   []string
}

// Section is a markdown heading. Line and EndLine are 1-based; EndLine is
// the last line covered by the section (the line before the next heading,
// or the end of the document).
type Section struct {
	Level   int
	Title   string
	Line    int
	EndLine int
}

// Table is a GFM table. Headers is the first row; Rows holds the data rows.
// A row may be shorter than Headers — absent cells are simply absent.
type Table struct {
	Headers       []string
	Rows          [][]string
	Line          int
	ParentSection string // title of the nearest preceding heading, "" if none
}

// Directive is a line that matched one of the built-in vague-directive
// patterns during parsing.
type Directive struct {
	Line    int
	Matched string
}

// SuppressKind distinguishes the inline suppression comment forms.
type SuppressKind int

const (
	// SuppressDisable opens a suppression block.
	SuppressDisable SuppressKind = iota
	// SuppressEnable closes a suppression block.
	SuppressEnable
	// SuppressNextLine suppresses only the following line.
	SuppressNextLine
)

// SuppressComment is an inline <!-- doclint-... --> comment. Rule is empty
// when the comment applies to every category.
type SuppressComment struct {
	Line int
	Kind SuppressKind
	Rule string
}

// NonCodeLines calls fn with each (1-based line number, line) pair outside
// fenced code blocks. Fence markers themselves are skipped.
func NonCodeLines(lines []string, fn func(num int, line string)) {
	inFence := false
	for i, line := range lines {
		trimmed := trimLeft(line)
		if len(trimmed) >= 3 && trimmed[:3] == "```" {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		fn(i+1, line)
	}
}

// IsDirectiveLine reports whether a line (already outside fenced code
// blocks) should be scanned for directives. Indented code, blockquotes,
// and table rows are content rather than instructions.
func IsDirectiveLine(line string) bool {
	trimmed := trimLeft(line)
	if len(line) >= 4 && line[:4] == "    " {
		if len(trimmed) == 0 || (trimmed[0] != '-' && trimmed[0] != '*') {
			return false
		}
	}
	if len(trimmed) > 0 && (trimmed[0] == '>' || trimmed[0] == '|') {
		return false
	}
	return true
}

func trimLeft(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return s
}
