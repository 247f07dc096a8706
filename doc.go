// Package src2pdf renders a directory of source files into a single
// syntax-highlighted PDF document.
//
// # Quick Start
//
// Create a service and generate a PDF from a directory:
//
//	svc := src2pdf.New()
//	result, err := svc.Generate(ctx, src2pdf.Input{
//	    Root:       "./project",
//	    Extensions: []string{".go", ".py"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// Files that cannot be decoded as UTF-8 text are skipped and reported in
// result.Skipped; they never abort the run.
//
// # Pipeline
//
// Generation follows four sequential stages, once per file:
//
//  1. File selection (recursive walk, extension and suffix filters)
//  2. Source reading (UTF-8 decode, skip on failure)
//  3. Syntax highlighting via chroma (per-extension lexer, plain fallback)
//  4. Page layout and PDF serialization via gofpdf
//
// Files are processed in sorted path order, so repeated runs over unchanged
// input with identical options produce byte-identical output.
//
// # Configuration
//
// Use functional options to customize rendering:
//
//	svc := src2pdf.New(
//	    src2pdf.WithStyle("monokai"),
//	    src2pdf.WithFont("/path/to/mono.ttf", 9),
//	    src2pdf.WithPage(&src2pdf.PageSettings{
//	        Size:        src2pdf.PageSizeLetter,
//	        Orientation: src2pdf.OrientationPortrait,
//	        Margin:      0.75,
//	    }),
//	)
//
// The built-in Courier font covers the cp1252 character set; characters
// outside it render as a replacement glyph. Supply a TTF via WithFont to
// embed a font with wider coverage.
//
// Extension and suffix matching is case-sensitive on every platform:
// "-e .PY" does not select "main.py".
package src2pdf
