package feed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cory-johannsen/discs/internal/importer"
)

var _ importer.Source = (*Source)(nil)

// Source implements importer.Source for feed files. The path may be a single
// feed file or a directory; in a directory every .yaml, .yml, .json, .html
// and .htm file is read in name order. Subdirectories are ignored. HTML files
// are parsed as catalog listing pages by ParseHTML.
type Source struct{}

// NewSource constructs a feed Source.
func NewSource() *Source { return &Source{} }

// Load reads the feed at path and returns its discs in file order.
//
// Precondition: path must be a readable feed file or directory.
// Postcondition: returns the concatenated discs of every feed file, or a
// non-nil error. A directory with no feed files is an error.
func (s *Source) Load(ctx context.Context, path string) ([]importer.RawDisc, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("feed path %q not accessible: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = feedFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no feed files found in %s", path)
		}
	}

	var discs []importer.RawDisc
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading feed file %s: %w", f, err)
		}
		parsed, err := parseFile(f, data)
		if err != nil {
			return nil, fmt.Errorf("parsing feed file %s: %w", f, err)
		}
		discs = append(discs, parsed...)
	}
	return discs, nil
}

func feedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func parseFile(path string, data []byte) ([]importer.RawDisc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseHTML(data)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return doc.Discs, nil
}
