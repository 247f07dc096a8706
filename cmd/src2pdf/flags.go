package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the src2pdf command.
// Zero values mean "not set"; resolveParams applies config and defaults.
type cliFlags struct {
	extensions      []string
	output          string
	excludeSuffixes []string
	fontPath        string
	fontSize        int
	config          string
	style           string
	pageSize        string
	orientation     string
	margin          float64
	noLineNumbers   bool
	pagePerFile     bool
	quiet           bool
	verbose         bool
	version         bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("src2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	// Selection
	fs.StringSliceVarP(&f.extensions, "extensions", "e", nil, "file extensions to include, dot-prefixed (repeatable or comma-separated)")
	fs.StringSliceVar(&f.excludeSuffixes, "exclude-suffix", nil, "filename suffixes to exclude (repeatable or comma-separated)")

	// I/O
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default output.pdf)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	// Rendering
	fs.StringVar(&f.style, "style", "", "highlight style name (default colorful)")
	fs.StringVar(&f.fontPath, "font-path", "", "TTF font to embed (default: built-in Courier)")
	fs.IntVar(&f.fontSize, "font-size", 0, "body font size in points (default 10)")
	fs.BoolVar(&f.noLineNumbers, "no-line-numbers", false, "disable the line-number gutter")
	fs.BoolVar(&f.pagePerFile, "page-per-file", false, "start every file on a fresh page")

	// Page
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved settings and per-run detail")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.SortFlags = false
	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
