package src2pdf

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Layout constants in points.
const (
	headerTitleSize  = 16.0
	headerPathSize   = 10.0
	headerCellHeight = 20.0
	headerGap        = 10.0
	pointsPerInch    = 72.0
)

// lineHeightFactor scales the font size into a line height.
const lineHeightFactor = 1.25

// gutterGray is the line-number color.
const gutterGray = 128

// embeddedFamily is the registered name for a user-supplied TTF.
const embeddedFamily = "embedded"

// pageRenderer lays out highlighted lines onto PDF pages.
// Usage is strictly sequential: StartFile, then WriteLine for each of the
// file's lines, repeated per file; Finalize once at the end consumes the
// renderer.
type pageRenderer interface {
	StartFile(displayPath string, lineCount int)
	WriteLine(line Line)
	Finalize() ([]byte, error)
}

// fpdfRenderer implements pageRenderer on gofpdf.
//
// It owns the only mutable cross-file state of a run: the page cursor.
// Auto page break is disabled; ensureRoom is the single place where page
// transitions happen.
type fpdfRenderer struct {
	pdf          *gofpdf.Fpdf
	translate    func(string) string // cp1252 mapping for core fonts, identity for an embedded TTF
	headerFamily string
	bodyFamily   string
	fontSize     float64
	lineHeight   float64
	charWidth    float64
	lineNumbers  bool
	digits       int     // line-number digits the gutter is sized for
	gutter       float64 // line-number gutter width, 0 when disabled
	columns      int     // body columns per row after the gutter
	base         SpanStyle
	pagePerFile  bool
	files        int
	lineNum      int
	finalized    bool
}

// pageSizeNames maps configured sizes to gofpdf size strings.
var pageSizeNames = map[string]string{
	PageSizeLetter: "Letter",
	PageSizeA4:     "A4",
	PageSizeLegal:  "Legal",
}

// newFpdfRenderer builds a renderer for one generation run.
// cfg must already be validated.
func newFpdfRenderer(cfg serviceConfig) (*fpdfRenderer, error) {
	page := cfg.page
	if page == nil {
		page = DefaultPageSettings()
	}

	orient := "P"
	if strings.ToLower(page.Orientation) == OrientationLandscape {
		orient = "L"
	}

	pdf := gofpdf.New(orient, "pt", pageSizeNames[strings.ToLower(page.Size)], "")
	margin := page.Margin * pointsPerInch
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	// Streams stay uncompressed and the creation date is pinned so that
	// identical inputs produce byte-identical output.
	pdf.SetCompression(false)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetCreator("src2pdf", true)

	r := &fpdfRenderer{
		pdf:          pdf,
		translate:    pdf.UnicodeTranslatorFromDescriptor(""),
		headerFamily: "Helvetica",
		bodyFamily:   "Courier",
		fontSize:     float64(cfg.fontSize),
		lineHeight:   float64(cfg.fontSize) * lineHeightFactor,
		base:         baseStyle(cfg.style),
		pagePerFile:  cfg.pagePerFile,
	}

	if cfg.fontPath != "" {
		for _, variant := range []string{"", "B", "I", "BI"} {
			pdf.AddUTF8Font(embeddedFamily, variant, cfg.fontPath)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, pdf.Error())
		}
		r.headerFamily = embeddedFamily
		r.bodyFamily = embeddedFamily
		r.translate = func(s string) string { return s }
	}

	r.lineNumbers = cfg.lineNumbers

	pdf.AddPage()
	pdf.SetFont(r.bodyFamily, "", r.fontSize)
	r.charWidth = pdf.GetStringWidth("0")
	r.setLayout(0)

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, pdf.Error())
	}
	return r, nil
}

// setLayout sizes the line-number gutter for a file of lineCount lines and
// recomputes the body column count. The gutter holds at least four digits
// so short files keep a uniform layout, and grows for longer files so line
// numbers never overflow into the body column.
func (r *fpdfRenderer) setLayout(lineCount int) {
	r.digits = 4
	for n := lineCount; n > 9999; n /= 10 {
		r.digits++
	}

	r.gutter = 0
	if r.lineNumbers {
		r.pdf.SetFont(r.bodyFamily, "", r.fontSize)
		r.gutter = r.pdf.GetStringWidth(strings.Repeat("9", r.digits) + " ")
	}

	pageW, _ := r.pdf.GetPageSize()
	left, _, right, _ := r.pdf.GetMargins()
	r.columns = int((pageW - left - right - r.gutter) / r.charWidth)
	if r.columns < 1 {
		r.columns = 1
	}
}

// StartFile emits the file-boundary header for displayPath and sizes the
// layout for a file of lineCount source lines. The header and at least one
// body line always land on the same page.
func (r *fpdfRenderer) StartFile(displayPath string, lineCount int) {
	r.lineNum = 0
	r.setLayout(lineCount)

	if r.files > 0 {
		if r.pagePerFile {
			r.pdf.AddPage()
		} else {
			r.pdf.Ln(headerGap)
			r.ensureRoom(2*headerCellHeight + headerGap + r.lineHeight)
		}
	}
	r.files++

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont(r.headerFamily, "B", headerTitleSize)
	r.pdf.CellFormat(0, headerCellHeight, r.translate("File: "+filepath.Base(displayPath)), "", 1, "C", false, 0, "")
	r.pdf.SetFont(r.headerFamily, "I", headerPathSize)
	r.pdf.CellFormat(0, headerCellHeight, r.translate("Path: "+displayPath), "", 1, "C", false, 0, "")
	r.pdf.Ln(headerGap)
}

// WriteLine lays out one source line, wrapping at the column boundary.
// Continuation rows carry no line number but keep the gutter indent.
func (r *fpdfRenderer) WriteLine(line Line) {
	r.lineNum++

	rows := r.wrap(line)
	if len(rows) == 0 {
		rows = [][]Span{nil} // blank source line still advances the cursor
	}

	left, _, _, _ := r.pdf.GetMargins()
	for i, row := range rows {
		r.ensureRoom(r.lineHeight)

		if r.gutter > 0 {
			if i == 0 {
				r.pdf.SetFont(r.bodyFamily, "", r.fontSize)
				r.pdf.SetTextColor(gutterGray, gutterGray, gutterGray)
				r.pdf.CellFormat(r.gutter, r.lineHeight, r.translate(fmt.Sprintf("%*d ", r.digits, r.lineNum)), "", 0, "R", false, 0, "")
			} else {
				r.pdf.SetX(left + r.gutter)
			}
		}

		for _, span := range row {
			r.applyStyle(span.Style)
			r.pdf.Write(r.lineHeight, r.translate(span.Text))
		}
		r.pdf.Ln(r.lineHeight)
	}
}

// wrap splits a styled line into rows of at most r.columns characters,
// breaking spans at the boundary. No content is dropped.
func (r *fpdfRenderer) wrap(line Line) [][]Span {
	var rows [][]Span
	var row []Span
	remaining := r.columns

	for _, span := range line {
		runes := []rune(span.Text)
		for len(runes) > 0 {
			if remaining == 0 {
				rows = append(rows, row)
				row = nil
				remaining = r.columns
			}
			n := len(runes)
			if n > remaining {
				n = remaining
			}
			row = append(row, Span{Text: string(runes[:n]), Style: span.Style})
			runes = runes[n:]
			remaining -= n
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// ensureRoom starts a new page when less than height remains below the
// cursor.
func (r *fpdfRenderer) ensureRoom(height float64) {
	_, pageH := r.pdf.GetPageSize()
	_, _, _, bottom := r.pdf.GetMargins()
	if r.pdf.GetY()+height > pageH-bottom {
		r.pdf.AddPage()
	}
}

// applyStyle selects the font variant and text color for a span.
func (r *fpdfRenderer) applyStyle(s SpanStyle) {
	var variant string
	if s.Bold {
		variant += "B"
	}
	if s.Italic {
		variant += "I"
	}
	r.pdf.SetFont(r.bodyFamily, variant, r.fontSize)

	switch {
	case s.HasColor:
		r.pdf.SetTextColor(int(s.R), int(s.G), int(s.B))
	case r.base.HasColor:
		r.pdf.SetTextColor(int(r.base.R), int(r.base.G), int(r.base.B))
	default:
		r.pdf.SetTextColor(0, 0, 0)
	}
}

// Finalize serializes the document and consumes the renderer.
func (r *fpdfRenderer) Finalize() ([]byte, error) {
	if r.finalized {
		return nil, fmt.Errorf("%w: renderer already finalized", ErrPDFGeneration)
	}
	r.finalized = true

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}
