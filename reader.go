package src2pdf

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// sourceReader loads the text content of a candidate file.
type sourceReader interface {
	ReadText(path string) (string, error)
}

// osReader reads files from the local filesystem.
type osReader struct{}

// ReadText returns the decoded content of the file at path.
// Content that is not valid UTF-8 yields an error wrapping ErrNotText;
// callers treat read errors as per-file warnings, not fatal failures.
func (osReader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from walking the user-selected root
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, path)
	}
	return string(data), nil
}
