package src2pdf

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span is a contiguous run of characters sharing one highlight style.
type Span struct {
	Text  string
	Style SpanStyle
}

// SpanStyle is the subset of token styling the renderer can express.
type SpanStyle struct {
	R, G, B  uint8
	HasColor bool // false means use the document's base text color
	Bold     bool
	Italic   bool
}

// Line is the ordered sequence of spans making up one source line.
// An empty Line is a blank source line.
type Line []Span

// Highlighter tokenizes source text into styled spans, one Line per
// source line. Implementations never fail: unsupported input degrades
// to plain, unstyled text.
type Highlighter interface {
	Highlight(text, extension string) []Line
}

// tabWidth is the number of spaces a tab expands to before layout.
// Expansion keeps column arithmetic in the renderer exact.
const tabWidth = 4

// chromaHighlighter implements Highlighter on the chroma lexer registry.
type chromaHighlighter struct {
	style *chroma.Style
}

// newChromaHighlighter creates a highlighter using the named chroma style.
// Unknown names resolve to chroma's fallback style; the service validates
// the name before any call reaches this point.
func newChromaHighlighter(styleName string) *chromaHighlighter {
	return &chromaHighlighter{style: styles.Get(styleName)}
}

// Highlight tokenizes text using the lexer matching extension.
func (h *chromaHighlighter) Highlight(text, extension string) []Line {
	lexer := lexerFor(text, extension)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return plainLines(text)
	}

	var out []Line
	for _, tokens := range chroma.SplitTokensIntoLines(it.Tokens()) {
		line := make(Line, 0, len(tokens))
		for _, tok := range tokens {
			value := expandTabs(strings.TrimRight(tok.Value, "\r\n"))
			if value == "" {
				continue
			}
			line = append(line, Span{Text: value, Style: h.styleFor(tok.Type)})
		}
		out = append(out, line)
	}
	return out
}

// lexerFor selects a lexer by extension alias, then content analysis,
// then the plain-text fallback. Never nil.
func lexerFor(text, extension string) chroma.Lexer {
	lexer := lexers.Get(strings.TrimPrefix(extension, "."))
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// styleFor maps a chroma token type to the renderer's style model.
func (h *chromaHighlighter) styleFor(ttype chroma.TokenType) SpanStyle {
	entry := h.style.Get(ttype)
	s := SpanStyle{
		Bold:   entry.Bold == chroma.Yes,
		Italic: entry.Italic == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		s.R, s.G, s.B = entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()
		s.HasColor = true
	}
	return s
}

// baseStyle returns the style applied to unstyled spans, taken from the
// plain-text token of the configured chroma style.
func baseStyle(styleName string) SpanStyle {
	return (&chromaHighlighter{style: styles.Get(styleName)}).styleFor(chroma.Text)
}

// plainLines degrades to one unstyled span per line when tokenization fails.
func plainLines(text string) []Line {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	rows := strings.Split(text, "\n")
	out := make([]Line, len(rows))
	for i, row := range rows {
		row = expandTabs(strings.TrimSuffix(row, "\r"))
		if row == "" {
			continue
		}
		out[i] = Line{{Text: row}}
	}
	return out
}

// expandTabs replaces tab characters with spaces.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
