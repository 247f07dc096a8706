package src2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrRootNotFound = errors.New("root directory not found")
	ErrNotDirectory = errors.New("root path is not a directory")
	ErrNoExtensions = errors.New("extension list cannot be empty")
	ErrBadExtension = errors.New("extension must be dot-prefixed")

	// Rendering configuration errors.
	ErrInvalidFontSize = errors.New("invalid font size")
	ErrFontNotFound    = errors.New("font file not found")
	ErrInvalidStyle    = errors.New("unknown highlight style")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Per-file errors. These are recoverable: the service records them as
	// skip warnings and keeps processing the remaining files.
	ErrNotText = errors.New("file is not valid UTF-8 text")

	// Rendering errors.
	ErrPDFGeneration = errors.New("PDF generation failed")
)
