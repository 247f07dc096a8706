package main

import (
	"errors"
	"os"

	src2pdf "github.com/alnah/go-src2pdf"
	"github.com/alnah/go-src2pdf/internal/config"
)

// Exit codes for the src2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run (including zero matched files)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, unwritable output
	ExitRender  = 4 // PDF generation errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, src2pdf.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoDirectory) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, src2pdf.ErrRootNotFound) ||
		errors.Is(err, src2pdf.ErrNotDirectory) ||
		errors.Is(err, src2pdf.ErrNoExtensions) ||
		errors.Is(err, src2pdf.ErrBadExtension) ||
		errors.Is(err, src2pdf.ErrInvalidFontSize) ||
		errors.Is(err, src2pdf.ErrFontNotFound) ||
		errors.Is(err, src2pdf.ErrInvalidStyle) ||
		errors.Is(err, src2pdf.ErrInvalidPageSize) ||
		errors.Is(err, src2pdf.ErrInvalidOrientation) ||
		errors.Is(err, src2pdf.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
