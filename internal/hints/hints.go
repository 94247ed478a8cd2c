// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForSourceDirectory returns hints for a missing or unreadable source root.
func ForSourceDirectory() string {
	return format("pass the source directory as an argument or set source in a config file")
}

// ForOutputDirectory returns hints for output directory creation errors.
// Inside a container the output root is often on a read-only layer.
func ForOutputDirectory() string {
	hints := []string{"check parent directory exists and is writable"}
	if IsInContainer() {
		hints = append(hints, "mount a writable volume for the output directory")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-mdsite) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForLayoutNotFound lists the layouts that were loaded.
func ForLayoutNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForLayoutSyntax reminds of the slot syntax layouts are written in.
func ForLayoutSyntax() string {
	return format("layouts are Go templates; slots are {{.title}}, {{.content}}, and {{.address}}")
}

// ForAddressCollision explains how two sources end up on one address.
func ForAddressCollision() string {
	return format("a/index.md and a.md both publish to /a; rename or remove one")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
