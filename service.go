package src2pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-src2pdf/internal/fileutil"
)

// serviceConfig holds resolved configuration for a Service.
type serviceConfig struct {
	style       string
	fontPath    string
	fontSize    int
	page        *PageSettings
	lineNumbers bool
	pagePerFile bool
}

// Service orchestrates the select, read, highlight, render pipeline.
type Service struct {
	cfg         serviceConfig
	selector    fileSelector
	reader      sourceReader
	highlighter Highlighter
	newRenderer func(serviceConfig) (pageRenderer, error)
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithFont).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			style:       DefaultStyle,
			fontSize:    DefaultFontSize,
			page:        DefaultPageSettings(),
			lineNumbers: true,
		},
		selector: walkSelector{},
		reader:   osReader{},
		newRenderer: func(cfg serviceConfig) (pageRenderer, error) {
			return newFpdfRenderer(cfg)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create highlighter if not injected, so WithStyle applies to it
	if s.highlighter == nil {
		s.highlighter = newChromaHighlighter(s.cfg.style)
	}

	return s
}

// Generate runs the full pipeline over input.Root and returns the finished
// document. Files are processed one at a time in sorted path order; the
// context is checked between files. Per-file read failures land in
// Result.Skipped and never abort the run. A run that matches zero files
// still yields a valid PDF.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	files, err := s.selector.Select(input.Root, input.Extensions, input.ExcludeSuffixes)
	if err != nil {
		return nil, err
	}

	renderer, err := s.newRenderer(s.cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := s.reader.ReadText(f.Path)
		if err != nil {
			result.Skipped = append(result.Skipped, Skip{Path: f.Display, Reason: err.Error()})
			continue
		}

		lines := s.highlighter.Highlight(text, f.Extension)
		renderer.StartFile(f.Display, len(lines))
		for _, line := range lines {
			renderer.WriteLine(line)
		}
		result.Files++
	}

	pdf, err := renderer.Finalize()
	if err != nil {
		return nil, err
	}
	result.PDF = pdf

	return result, nil
}

// validate checks the input and the service configuration before any file
// is touched, so configuration errors fail fast.
func (s *Service) validate(input Input) error {
	info, err := os.Stat(input.Root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRootNotFound, input.Root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, input.Root)
	}

	if len(input.Extensions) == 0 {
		return ErrNoExtensions
	}
	for _, ext := range input.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %q", ErrBadExtension, ext)
		}
	}

	if s.cfg.fontSize < MinFontSize || s.cfg.fontSize > MaxFontSize {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidFontSize, s.cfg.fontSize, MinFontSize, MaxFontSize)
	}
	if s.cfg.fontPath != "" && !fileutil.FileExists(s.cfg.fontPath) {
		return fmt.Errorf("%w: %s", ErrFontNotFound, s.cfg.fontPath)
	}

	if err := s.cfg.page.Validate(); err != nil {
		return err
	}

	if _, ok := styles.Registry[s.cfg.style]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, s.cfg.style)
	}

	return nil
}
