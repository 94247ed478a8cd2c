// Package address maps source document paths to their output location and
// public address.
//
// A source file named "index" (any extension) stands for its directory;
// any other file X stands for <directory>/X. Every page is written as
// <output-root>/<address>/index.html so it can be served without an
// extension:
//
//	src/index.md       -> /      -> public/index.html
//	src/a/b/index.md   -> /a/b   -> public/a/b/index.html
//	src/a/b/page.md    -> /a/b/page -> public/a/b/page/index.html
package address

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// IndexName is the file stem that maps to its containing directory.
const IndexName = "index"

// OutputFile is the file name every page is written to.
const OutputFile = "index.html"

var (
	// ErrOutsideRoot indicates a source path that does not lie under the source root.
	ErrOutsideRoot = errors.New("source path is outside the source root")

	// ErrCollision indicates two sources resolving to the same public address.
	ErrCollision = errors.New("address collision")
)

// Triple holds the three names that refer to one page.
type Triple struct {
	Source  string // path of the source document
	Output  string // path of the rendered index.html
	Address string // site-relative address, always rooted at "/"
}

// Resolve computes the Triple for src. It performs no I/O and always
// returns the same result for the same inputs.
func Resolve(src, srcRoot, outRoot string) (Triple, error) {
	rel, err := filepath.Rel(srcRoot, src)
	if err != nil {
		return Triple{}, fmt.Errorf("%w: %s: %v", ErrOutsideRoot, src, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Triple{}, fmt.Errorf("%w: %s not under %s", ErrOutsideRoot, src, srcRoot)
	}

	addr := addressOf(filepath.ToSlash(rel))

	return Triple{
		Source:  src,
		Output:  filepath.Join(outRoot, filepath.FromSlash(strings.TrimPrefix(addr, "/")), OutputFile),
		Address: addr,
	}, nil
}

// ResolveAll resolves every source and rejects the batch if two sources map
// to the same address. The returned triples keep the input order.
func ResolveAll(sources []string, srcRoot, outRoot string) ([]Triple, error) {
	triples := make([]Triple, 0, len(sources))
	seen := make(map[string]string, len(sources))

	for _, src := range sources {
		t, err := Resolve(src, srcRoot, outRoot)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[t.Address]; dup {
			return nil, fmt.Errorf("%w: %s and %s both resolve to %s", ErrCollision, prev, src, t.Address)
		}
		seen[t.Address] = src
		triples = append(triples, t)
	}

	return triples, nil
}

// ResolveLink maps href, a relative link written in the page from, to the
// address of the source document it names. Query strings and fragments are
// kept. ok is false when href does not name a file with one of extensions
// or when it climbs out of srcRoot.
func ResolveLink(href string, from Triple, srcRoot string, extensions []string) (string, bool) {
	target, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		target, suffix = href[:i], href[i:]
	}
	if target == "" || path.IsAbs(target) || !slices.Contains(extensions, path.Ext(target)) {
		return "", false
	}

	fromRel, err := filepath.Rel(srcRoot, from.Source)
	if err != nil {
		return "", false
	}
	joined := path.Join(path.Dir(filepath.ToSlash(fromRel)), target)
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return "", false
	}

	return addressOf(joined) + suffix, true
}

// addressOf returns the public address of a slash-separated path relative
// to the source root.
func addressOf(rel string) string {
	dir, file := path.Split(rel)
	stem := strings.TrimSuffix(file, path.Ext(file))

	logical := dir
	if stem != IndexName {
		logical = path.Join(dir, stem)
	}
	return path.Join("/", logical)
}
