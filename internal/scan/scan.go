// Package scan enumerates source documents under a root directory.
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// ErrListDirectory indicates a directory under the root could not be listed.
// Unlike unreadable entries, which are skipped, this aborts the scan.
var ErrListDirectory = errors.New("cannot list source directory")

// DefaultExtensions are the file extensions treated as source documents.
var DefaultExtensions = []string{".md", ".markdown"}

// Scanner walks a directory tree and collects files whose extension marks
// them as source documents.
type Scanner struct {
	extensions []string
}

// New creates a Scanner matching the given extensions (e.g. ".md").
// With no extensions, DefaultExtensions are used.
func New(extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{extensions: slices.Clone(extensions)}
}

// Scan returns every source document under root, at any depth, sorted
// lexically. The walk uses an explicit stack rather than recursion.
// Symlinked directories are followed once; a directory reached twice
// through links is not listed again.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	var found []string
	visited := make(map[string]struct{})
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if real, err := filepath.EvalSymlinks(dir); err == nil {
			if _, seen := visited[real]; seen {
				continue
			}
			visited[real] = struct{}{}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrListDirectory, dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			isDir, isFile, ok := classify(path, entry)
			if !ok {
				continue
			}
			switch {
			case isDir:
				stack = append(stack, path)
			case isFile && s.matches(path):
				found = append(found, path)
			}
		}
	}

	slices.Sort(found)
	return found, nil
}

// classify reports whether the entry is a directory or regular file,
// following symlinks. ok is false for entries that cannot be inspected.
func classify(path string, entry os.DirEntry) (isDir, isFile, ok bool) {
	mode := entry.Type()
	if mode&os.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return false, false, false
		}
		mode = info.Mode()
	}
	return mode.IsDir(), mode.IsRegular(), true
}

// matches reports whether path carries one of the scanner's extensions.
// A dotfile such as ".md" has no stem and is not a document.
func (s *Scanner) matches(path string) bool {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		return false
	}
	return slices.Contains(s.extensions, ext)
}
