package main

import (
	"context"

	src2pdf "github.com/alnah/go-src2pdf"
)

// generate builds the service from resolved params and runs it.
// Split from run so tests can exercise argument handling and generation
// independently.
func generate(ctx context.Context, p *runParams) (*src2pdf.Result, error) {
	svc := src2pdf.New(
		src2pdf.WithStyle(p.style),
		src2pdf.WithFont(p.fontPath, p.fontSize),
		src2pdf.WithPage(p.page),
		src2pdf.WithLineNumbers(p.lineNumbers),
		src2pdf.WithPagePerFile(p.pagePerFile),
	)

	return svc.Generate(ctx, src2pdf.Input{
		Root:            p.root,
		Extensions:      p.extensions,
		ExcludeSuffixes: p.excludeSuffixes,
	})
}
