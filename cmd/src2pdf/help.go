package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: src2pdf <directory> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a directory of source files into one syntax-highlighted PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  directory    Root directory to scan (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Selection:")
	fmt.Fprintln(w, "  -e, --extensions <ext>       Extensions to include, dot-prefixed (required, repeatable)")
	fmt.Fprintln(w, "      --exclude-suffix <s>     Filename suffixes to exclude (repeatable)")
	fmt.Fprintln(w, "                               Matching is case-sensitive on every platform.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output PDF path (default: output.pdf)")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --style <name>           Highlight style (default: colorful)")
	fmt.Fprintln(w, "      --font-path <path>       TTF font to embed (default: built-in Courier)")
	fmt.Fprintln(w, "      --font-size <n>          Body font size in points (default: 10)")
	fmt.Fprintln(w, "      --no-line-numbers        Disable the line-number gutter")
	fmt.Fprintln(w, "      --page-per-file          Start every file on a fresh page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>          Page size: letter, a4, legal (default: a4)")
	fmt.Fprintln(w, "      --orientation <s>        Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>             Margin in inches (0.25-3.0, default: 0.5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show resolved settings")
	fmt.Fprintln(w, "      --version                Show version and exit")
}
