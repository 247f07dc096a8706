package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	src2pdf "github.com/alnah/go-src2pdf"
)

const testConfigYAML = `input:
  defaultDir: ./from-config
output:
  defaultPath: config-out.pdf
select:
  extensions: [".go"]
  excludeSuffixes: ["_gen.go"]
render:
  style: monokai
  fontSize: 12
  lineNumbers: false
page:
  size: letter
  margin: 1.0
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestResolveParams(t *testing.T) {
	t.Run("defaults without config", func(t *testing.T) {
		p, err := resolveParams(&cliFlags{}, []string{"./proj"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p.root != "./proj" {
			t.Errorf("root = %q, want %q", p.root, "./proj")
		}
		if p.output != "output.pdf" {
			t.Errorf("output = %q, want %q", p.output, "output.pdf")
		}
		if p.style != src2pdf.DefaultStyle {
			t.Errorf("style = %q, want %q", p.style, src2pdf.DefaultStyle)
		}
		if p.fontSize != src2pdf.DefaultFontSize {
			t.Errorf("fontSize = %d, want %d", p.fontSize, src2pdf.DefaultFontSize)
		}
		if !p.lineNumbers {
			t.Error("lineNumbers = false, want true by default")
		}
		if p.page.Size != src2pdf.PageSizeA4 {
			t.Errorf("page size = %q, want %q", p.page.Size, src2pdf.PageSizeA4)
		}
	})

	t.Run("missing directory returns ErrNoDirectory", func(t *testing.T) {
		_, err := resolveParams(&cliFlags{}, nil)
		if !errors.Is(err, ErrNoDirectory) {
			t.Errorf("error = %v, want ErrNoDirectory", err)
		}
	})

	t.Run("extra positional args return ErrTooManyArgs", func(t *testing.T) {
		_, err := resolveParams(&cliFlags{}, []string{"a", "b"})
		if !errors.Is(err, ErrTooManyArgs) {
			t.Errorf("error = %v, want ErrTooManyArgs", err)
		}
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		p, err := resolveParams(&cliFlags{config: writeTestConfig(t)}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p.root != "./from-config" {
			t.Errorf("root = %q, want config default dir", p.root)
		}
		if p.output != "config-out.pdf" {
			t.Errorf("output = %q, want config default path", p.output)
		}
		if len(p.extensions) != 1 || p.extensions[0] != ".go" {
			t.Errorf("extensions = %v, want [.go]", p.extensions)
		}
		if len(p.excludeSuffixes) != 1 || p.excludeSuffixes[0] != "_gen.go" {
			t.Errorf("excludeSuffixes = %v, want [_gen.go]", p.excludeSuffixes)
		}
		if p.style != "monokai" || p.fontSize != 12 {
			t.Errorf("render = %q/%d, want monokai/12", p.style, p.fontSize)
		}
		if p.lineNumbers {
			t.Error("lineNumbers = true, want false from config")
		}
		if p.page.Size != "letter" || p.page.Margin != 1.0 {
			t.Errorf("page = %+v, want letter with margin 1.0", p.page)
		}
		// Unset config fields keep defaults.
		if p.page.Orientation != src2pdf.OrientationPortrait {
			t.Errorf("orientation = %q, want default portrait", p.page.Orientation)
		}
	})

	t.Run("flags override config file", func(t *testing.T) {
		flags := &cliFlags{
			config:     writeTestConfig(t),
			output:     "flag-out.pdf",
			extensions: []string{".py"},
			style:      "github",
			fontSize:   8,
			pageSize:   "legal",
		}

		p, err := resolveParams(flags, []string{"./flag-dir"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p.root != "./flag-dir" {
			t.Errorf("root = %q, want positional argument", p.root)
		}
		if p.output != "flag-out.pdf" {
			t.Errorf("output = %q, want flag value", p.output)
		}
		if len(p.extensions) != 1 || p.extensions[0] != ".py" {
			t.Errorf("extensions = %v, want flag value [.py]", p.extensions)
		}
		if p.style != "github" || p.fontSize != 8 {
			t.Errorf("render = %q/%d, want github/8", p.style, p.fontSize)
		}
		if p.page.Size != "legal" {
			t.Errorf("page size = %q, want flag value legal", p.page.Size)
		}
		// Flag left unset: config still wins over the default.
		if p.page.Margin != 1.0 {
			t.Errorf("margin = %.1f, want config value 1.0", p.page.Margin)
		}
	})

	t.Run("missing config file propagates error", func(t *testing.T) {
		_, err := resolveParams(&cliFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}, []string{"dir"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
