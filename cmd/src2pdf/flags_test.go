package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Run("positional and short flags", func(t *testing.T) {
		f, positional, err := parseFlags([]string{"./proj", "-e", ".py", "-o", "out.pdf"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(positional) != 1 || positional[0] != "./proj" {
			t.Errorf("positional = %v, want [./proj]", positional)
		}
		if len(f.extensions) != 1 || f.extensions[0] != ".py" {
			t.Errorf("extensions = %v, want [.py]", f.extensions)
		}
		if f.output != "out.pdf" {
			t.Errorf("output = %q, want %q", f.output, "out.pdf")
		}
	})

	t.Run("comma-separated extensions", func(t *testing.T) {
		f, _, err := parseFlags([]string{"dir", "-e", ".go,.py"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.extensions) != 2 || f.extensions[0] != ".go" || f.extensions[1] != ".py" {
			t.Errorf("extensions = %v, want [.go .py]", f.extensions)
		}
	})

	t.Run("repeated extension flags accumulate", func(t *testing.T) {
		f, _, err := parseFlags([]string{"dir", "-e", ".go", "-e", ".py"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.extensions) != 2 {
			t.Errorf("extensions = %v, want two entries", f.extensions)
		}
	})

	t.Run("exclude suffixes and rendering flags", func(t *testing.T) {
		f, _, err := parseFlags([]string{
			"dir", "-e", ".go",
			"--exclude-suffix", "_test.go",
			"--style", "monokai",
			"--font-path", "mono.ttf",
			"--font-size", "9",
			"--no-line-numbers",
			"--page-per-file",
			"-p", "letter",
			"--orientation", "landscape",
			"--margin", "1.5",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.excludeSuffixes) != 1 || f.excludeSuffixes[0] != "_test.go" {
			t.Errorf("excludeSuffixes = %v, want [_test.go]", f.excludeSuffixes)
		}
		if f.style != "monokai" || f.fontPath != "mono.ttf" || f.fontSize != 9 {
			t.Errorf("rendering flags = %q/%q/%d", f.style, f.fontPath, f.fontSize)
		}
		if !f.noLineNumbers || !f.pagePerFile {
			t.Error("boolean rendering flags not set")
		}
		if f.pageSize != "letter" || f.orientation != "landscape" || f.margin != 1.5 {
			t.Errorf("page flags = %q/%q/%.1f", f.pageSize, f.orientation, f.margin)
		}
	})

	t.Run("defaults are zero values", func(t *testing.T) {
		f, _, err := parseFlags([]string{"dir"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.output != "" || f.style != "" || f.fontSize != 0 || f.margin != 0 {
			t.Error("unset flags must stay at zero values for config merging")
		}
	})

	t.Run("unknown flag returns error", func(t *testing.T) {
		_, _, err := parseFlags([]string{"dir", "--bogus"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
