package layout

import "errors"

// Sentinel errors for layout operations.
var (
	// ErrLayoutNotFound indicates no layout with the requested name was loaded.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrInvalidLayoutName indicates a name that cannot refer to a file
	// below the layouts directory.
	ErrInvalidLayoutName = errors.New("invalid layout name")

	// ErrInvalidLayoutDir indicates the layouts path exists but is not a directory.
	ErrInvalidLayoutDir = errors.New("invalid layouts directory")

	// ErrLayoutRead indicates an I/O error while reading a layout file.
	ErrLayoutRead = errors.New("failed to read layout")

	// ErrLayoutParse indicates a layout file is not a valid template.
	ErrLayoutParse = errors.New("failed to parse layout")

	// ErrLayoutRender indicates a layout failed while executing.
	ErrLayoutRender = errors.New("failed to render layout")

	// ErrPathTraversal indicates a layout file resolving outside the layouts directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
