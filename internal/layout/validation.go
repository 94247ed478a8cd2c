package layout

import (
	"fmt"
	"path"
	"strings"
)

// ValidateName checks that a layout name is a clean, relative, slash-separated
// path. Returns ErrInvalidLayoutName for empty names, absolute paths,
// backslashes, NUL bytes, or ".." segments.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLayoutName)
	}
	if strings.ContainsAny(name, "\\\x00") || path.IsAbs(name) {
		return fmt.Errorf("%w: %q", ErrInvalidLayoutName, name)
	}
	if path.Clean(name) != name {
		return fmt.Errorf("%w: %q is not a clean path", ErrInvalidLayoutName, name)
	}
	if name == ".." || strings.HasPrefix(name, "../") {
		return fmt.Errorf("%w: %q", ErrInvalidLayoutName, name)
	}
	return nil
}
