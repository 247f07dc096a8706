package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrWriteOutput indicates the finished PDF could not be written.
var ErrWriteOutput = errors.New("failed to write output file")

// run parses arguments, resolves configuration, executes the pipeline, and
// writes the output file. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(stdout, "src2pdf %s\n", Version)
		return ExitSuccess
	}

	params, err := resolveParams(flags, positional)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Scanning %s for %s\n", params.root, strings.Join(params.extensions, ", "))
		fmt.Fprintf(stderr, "Style: %s, font size: %dpt, page: %s %s\n",
			params.style, params.fontSize, params.page.Size, params.page.Orientation)
	}

	result, err := generate(context.Background(), params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	if err := os.WriteFile(params.output, result.PDF, 0o644); err != nil { // #nosec G306 -- the PDF is a shareable document
		err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	// Decode failures are warnings: listed at the end, never fatal.
	for _, skip := range result.Skipped {
		fmt.Fprintf(stderr, "warning: skipped %s: %s\n", skip.Path, skip.Reason)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s (%d files", params.output, result.Files)
		if n := len(result.Skipped); n > 0 {
			fmt.Fprintf(stdout, ", %d skipped", n)
		}
		fmt.Fprintln(stdout, ")")
	}

	return ExitSuccess
}
