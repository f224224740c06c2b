// Package scanner discovers the markdown files a run will lint. Discovery
// is glob-driven: include patterns select files, ignore patterns prune
// directories, and ignore_files drops individual files.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentstation/doclint/internal/matcher"
)

// Scanner walks a project root for lintable markdown files.
type Scanner struct {
	include     *matcher.PathSet
	ignore      *matcher.PathSet
	ignoreFiles *matcher.PathSet
}

// New compiles the three glob lists. All matching is case-insensitive
// against either the bare name or the root-relative path.
func New(include, ignore, ignoreFiles []string) (*Scanner, error) {
	inc, err := matcher.NewPathSet(include)
	if err != nil {
		return nil, err
	}
	ign, err := matcher.NewPathSet(ignore)
	if err != nil {
		return nil, err
	}
	ignf, err := matcher.NewPathSet(ignoreFiles)
	if err != nil {
		return nil, err
	}
	return &Scanner{include: inc, ignore: ign, ignoreFiles: ignf}, nil
}

// Scan returns the sorted root-relative slash paths of every .md file that
// matches an include pattern. An empty include list selects nothing.
// Unreadable directories are skipped rather than failing the run.
func (s *Scanner) Scan(root string) ([]string, error) {
	if s.include.Empty() {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.ignore.MatchPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(rel), ".md") {
			return nil
		}
		if s.ignore.MatchPath(rel) || s.ignoreFiles.MatchPath(rel) {
			return nil
		}
		if s.include.MatchPath(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
