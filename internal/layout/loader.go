package layout

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultDir is the layouts directory used when none is configured.
const DefaultDir = "templates"

// layoutExt marks files in the layouts directory as layouts.
const layoutExt = ".html"

//go:embed layouts/*.html
var embedded embed.FS

// slotShorthand matches {{ title }}, {{- content -}} and similar bare slot
// references, which Go templates would otherwise treat as function calls.
var slotShorthand = regexp.MustCompile(`\{\{(-?\s*)(title|content|address)(\s*-?)\}\}`)

// Load builds a Set from the embedded layouts and the *.html files under
// dir. An empty dir, or one that does not exist, yields the embedded
// layouts only.
func Load(dir string, mode Mode) (*Set, error) {
	sources, err := readEmbedded()
	if err != nil {
		return nil, err
	}

	if dir != "" {
		custom, err := readDir(dir)
		if err != nil {
			return nil, err
		}
		for name, src := range custom {
			sources[name] = src
		}
	}

	for name, src := range sources {
		sources[name] = expandShorthand(src)
	}

	exec, names, err := parse(mode, sources)
	if err != nil {
		return nil, err
	}
	return &Set{mode: mode, names: names, exec: exec}, nil
}

// expandShorthand rewrites bare slot references to field references.
func expandShorthand(src string) string {
	return slotShorthand.ReplaceAllString(src, "{{$1.$2$3}}")
}

// readEmbedded returns the compiled-in layouts keyed by name.
func readEmbedded() (map[string]string, error) {
	sources := make(map[string]string)
	err := fs.WalkDir(embedded, "layouts", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := embedded.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLayoutRead, err)
		}
		sources[strings.TrimPrefix(p, "layouts/")] = string(content)
		return nil
	})
	return sources, err
}

// readDir returns every layout file below dir keyed by its slash-separated
// relative path.
func readDir(dir string) (map[string]string, error) {
	base, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayoutDir, err)
	}
	// Resolve symlinks in base path for consistent containment checks
	if real, err := filepath.EvalSymlinks(base); err == nil {
		base = real
	}

	info, err := os.Stat(base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayoutDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidLayoutDir, base)
	}

	sources := make(map[string]string)
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLayoutRead, err)
		}
		if d.IsDir() || filepath.Ext(p) != layoutExt {
			return nil
		}
		if err := verifyPathContainment(base, p); err != nil {
			return err
		}

		content, err := os.ReadFile(p) // #nosec G304 -- path validated above
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLayoutRead, err)
		}

		rel, err := filepath.Rel(base, p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLayoutRead, err)
		}
		sources[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// verifyPathContainment ensures the file, after resolving symlinks, is
// within base.
func verifyPathContainment(base, filePath string) error {
	real, err := filepath.EvalSymlinks(filePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLayoutRead, err)
	}

	// Add separator to prevent prefix attacks (e.g., /base/path vs /base/pathevil)
	if !strings.HasPrefix(real, base+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, filePath, base)
	}
	return nil
}
