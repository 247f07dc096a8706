package src2pdf

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// Font size bounds in points.
const (
	MinFontSize     = 4
	MaxFontSize     = 72
	DefaultFontSize = 10
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "colorful"

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains generation parameters.
type Input struct {
	Root            string   // directory to scan (required)
	Extensions      []string // dot-prefixed extensions to include (required, at least one)
	ExcludeSuffixes []string // filename endings to drop even when the extension matches (optional)
}

// Skip records a file that was excluded from the output after selection.
type Skip struct {
	Path   string // path relative to the scan root
	Reason string
}

// Result holds the outcome of a generation run.
type Result struct {
	PDF     []byte // finished document
	Files   int    // files rendered
	Skipped []Skip // files skipped with warnings
}

// Option configures a Service.
type Option func(*Service)

// WithStyle sets the chroma style used for highlighting.
// Unknown names are rejected by Generate, not here.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithFont sets a TTF file to embed and the body font size in points.
// An empty path keeps the built-in Courier font.
func WithFont(path string, size int) Option {
	return func(s *Service) {
		s.cfg.fontPath = path
		s.cfg.fontSize = size
	}
}

// WithPage sets the page dimensions. Nil means defaults.
func WithPage(p *PageSettings) Option {
	return func(s *Service) {
		s.cfg.page = p
	}
}

// WithLineNumbers toggles the line-number gutter (on by default).
func WithLineNumbers(enabled bool) Option {
	return func(s *Service) {
		s.cfg.lineNumbers = enabled
	}
}

// WithPagePerFile makes every file start on a fresh page instead of
// flowing after the previous file's content.
func WithPagePerFile(enabled bool) Option {
	return func(s *Service) {
		s.cfg.pagePerFile = enabled
	}
}

// WithHighlighter injects a custom highlighting collaborator.
func WithHighlighter(h Highlighter) Option {
	return func(s *Service) {
		s.highlighter = h
	}
}
