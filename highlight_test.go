package src2pdf

import (
	"strings"
	"testing"
)

func lineText(line Line) string {
	var b strings.Builder
	for _, span := range line {
		b.WriteString(span.Text)
	}
	return b.String()
}

func TestChromaHighlighter_LineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		extension string
		wantLines int
	}{
		{
			name:      "go source keeps one Line per source line",
			text:      "package main\n\nfunc main() {}\n",
			extension: ".go",
			wantLines: 3,
		},
		{
			name:      "no trailing newline",
			text:      "x = 1\ny = 2",
			extension: ".py",
			wantLines: 2,
		},
		{
			name:      "plain text",
			text:      "alpha\nbeta\ngamma\n",
			extension: ".txt",
			wantLines: 3,
		},
	}

	h := newChromaHighlighter(DefaultStyle)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := h.Highlight(tt.text, tt.extension)
			if len(got) != tt.wantLines {
				t.Fatalf("Highlight() produced %d lines, want %d", len(got), tt.wantLines)
			}
		})
	}
}

func TestChromaHighlighter_PreservesContent(t *testing.T) {
	t.Parallel()

	text := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
	h := newChromaHighlighter(DefaultStyle)

	lines := h.Highlight(text, ".go")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if got := lineText(lines[0]); got != "package main" {
		t.Errorf("line 1 = %q, want %q", got, "package main")
	}
	if len(lines[1]) != 0 {
		t.Errorf("line 2 = %q, want blank", lineText(lines[1]))
	}
	// Tabs expand to spaces so the renderer's column math stays exact.
	if got := lineText(lines[3]); got != `    println("hi")` {
		t.Errorf("line 4 = %q, want tab expanded to %d spaces", got, tabWidth)
	}
}

func TestChromaHighlighter_StylesKeywords(t *testing.T) {
	t.Parallel()

	h := newChromaHighlighter(DefaultStyle)
	lines := h.Highlight("package main\n", ".go")

	styled := false
	for _, line := range lines {
		for _, span := range line {
			if span.Style.HasColor || span.Style.Bold {
				styled = true
			}
		}
	}
	if !styled {
		t.Error("no span carries color or weight; expected keyword styling")
	}
}

func TestChromaHighlighter_UnknownExtensionIsPlain(t *testing.T) {
	t.Parallel()

	h := newChromaHighlighter(DefaultStyle)
	lines := h.Highlight("alpha beta\n", ".txt")

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if got := lineText(lines[0]); got != "alpha beta" {
		t.Errorf("line = %q, want %q", got, "alpha beta")
	}
	for _, span := range lines[0] {
		if span.Style.Bold || span.Style.Italic {
			t.Errorf("plain text span %q carries weight styling", span.Text)
		}
	}
}

func TestLexerFor(t *testing.T) {
	t.Parallel()

	t.Run("known extension selects a concrete lexer", func(t *testing.T) {
		t.Parallel()

		lexer := lexerFor("package main\n", ".go")
		if lexer == nil {
			t.Fatal("lexerFor returned nil")
		}
		if lexer.Config().Name == "fallback" {
			t.Error("got fallback lexer for .go, want Go lexer")
		}
	})

	t.Run("unknown extension never returns nil", func(t *testing.T) {
		t.Parallel()

		if lexerFor("", ".zzzz") == nil {
			t.Fatal("lexerFor returned nil")
		}
	})
}

func TestPlainLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty text", text: "", want: nil},
		{name: "single line", text: "hello\n", want: []string{"hello"}},
		{name: "blank middle line", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf stripped", text: "a\r\nb\r\n", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := plainLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("plainLines() produced %d lines, want %d", len(got), len(tt.want))
			}
			for i, line := range got {
				if lineText(line) != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i+1, lineText(line), tt.want[i])
				}
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	if got := expandTabs("\ta"); got != "    a" {
		t.Errorf("expandTabs(%q) = %q, want %q", "\ta", got, "    a")
	}
	if got := expandTabs("no tabs"); got != "no tabs" {
		t.Errorf("expandTabs(%q) = %q, want unchanged", "no tabs", got)
	}
}
