// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o755 // rwxr-xr-x: pages are served, so directories are world-readable
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for file utility operations.
var (
	ErrCreateDirectory        = errors.New("failed to create output directory")
	ErrWriteFile              = errors.New("failed to write output file")
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrExtensionNoDot         = errors.New("extension must start with a dot")
)

// WriteOutput creates every missing directory on the way to path and writes
// content to it, replacing any existing file. Concurrent callers may create
// the same intermediate directory; MkdirAll treats an existing directory as
// success. The write is not atomic: an interrupted write can leave a
// truncated file.
func WriteOutput(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateDirectory, err)
	}
	// #nosec G306 -- rendered pages are meant to be readable
	if err := os.WriteFile(path, content, FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	return nil
}

// ValidateExtension checks that a source extension looks like ".md".
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	if !strings.HasPrefix(extension, ".") || len(extension) == 1 {
		return fmt.Errorf("%w: %q", ErrExtensionNoDot, extension)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/mdsite/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
