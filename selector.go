package src2pdf

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Candidate is a file selected for rendering.
type Candidate struct {
	Path      string // walk path, usable for reading
	Display   string // path relative to the scan root, shown in the file header
	Extension string // dot-prefixed extension, e.g. ".go"
}

// fileSelector produces the ordered list of files to render.
type fileSelector interface {
	Select(root string, extensions, excludeSuffixes []string) ([]Candidate, error)
}

// walkSelector selects files by walking the root directory recursively.
// Matching is case-sensitive on every platform.
type walkSelector struct{}

// Select returns the candidates under root whose extension is in extensions
// and whose filename does not end with any of excludeSuffixes, sorted by
// path. A root with zero matches is not an error.
func (walkSelector) Select(root string, extensions, excludeSuffixes []string) ([]Candidate, error) {
	var out []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if !slices.Contains(extensions, filepath.Ext(name)) {
			return nil
		}
		for _, suffix := range excludeSuffixes {
			if strings.HasSuffix(name, suffix) {
				return nil
			}
		}

		display, relErr := filepath.Rel(root, path)
		if relErr != nil {
			display = path
		}
		out = append(out, Candidate{Path: path, Display: display, Extension: filepath.Ext(name)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir is already lexical, but the output order is a documented
	// invariant, so enforce it here rather than inherit it.
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out, nil
}
