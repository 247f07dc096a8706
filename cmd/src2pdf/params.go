package main

import (
	"errors"
	"fmt"

	src2pdf "github.com/alnah/go-src2pdf"
	"github.com/alnah/go-src2pdf/internal/config"
)

// Sentinel errors for argument resolution.
var (
	ErrNoDirectory = errors.New("missing required argument: directory")
	ErrTooManyArgs = errors.New("too many arguments")
)

// runParams is the fully resolved configuration for one run.
// Precedence: flags > config file > defaults.
type runParams struct {
	root            string
	output          string
	extensions      []string
	excludeSuffixes []string
	style           string
	fontPath        string
	fontSize        int
	page            *src2pdf.PageSettings
	lineNumbers     bool
	pagePerFile     bool
}

// resolveParams merges flags, the optional config file, and defaults.
// Semantic validation (extension shape, page sizes, font bounds) is left
// to the generation service so there is a single authority.
func resolveParams(f *cliFlags, positional []string) (*runParams, error) {
	if len(positional) > 1 {
		return nil, fmt.Errorf("%w: %v", ErrTooManyArgs, positional[1:])
	}

	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	p := &runParams{
		output:      "output.pdf",
		style:       src2pdf.DefaultStyle,
		fontSize:    src2pdf.DefaultFontSize,
		page:        src2pdf.DefaultPageSettings(),
		lineNumbers: true,
	}

	// Config file over defaults
	if cfg.Output.DefaultPath != "" {
		p.output = cfg.Output.DefaultPath
	}
	p.extensions = cfg.Select.Extensions
	p.excludeSuffixes = cfg.Select.ExcludeSuffixes
	if cfg.Render.Style != "" {
		p.style = cfg.Render.Style
	}
	if cfg.Render.FontPath != "" {
		p.fontPath = cfg.Render.FontPath
	}
	if cfg.Render.FontSize != 0 {
		p.fontSize = cfg.Render.FontSize
	}
	if cfg.Render.LineNumbers != nil {
		p.lineNumbers = *cfg.Render.LineNumbers
	}
	if cfg.Render.PagePerFile {
		p.pagePerFile = true
	}
	if cfg.Page.Size != "" {
		p.page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		p.page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		p.page.Margin = cfg.Page.Margin
	}

	// Flags over config file
	if len(positional) == 1 {
		p.root = positional[0]
	} else if cfg.Input.DefaultDir != "" {
		p.root = cfg.Input.DefaultDir
	} else {
		return nil, ErrNoDirectory
	}
	if f.output != "" {
		p.output = f.output
	}
	if len(f.extensions) > 0 {
		p.extensions = f.extensions
	}
	if len(f.excludeSuffixes) > 0 {
		p.excludeSuffixes = f.excludeSuffixes
	}
	if f.style != "" {
		p.style = f.style
	}
	if f.fontPath != "" {
		p.fontPath = f.fontPath
	}
	if f.fontSize != 0 {
		p.fontSize = f.fontSize
	}
	if f.noLineNumbers {
		p.lineNumbers = false
	}
	if f.pagePerFile {
		p.pagePerFile = true
	}
	if f.pageSize != "" {
		p.page.Size = f.pageSize
	}
	if f.orientation != "" {
		p.page.Orientation = f.orientation
	}
	if f.margin != 0 {
		p.page.Margin = f.margin
	}

	return p, nil
}
