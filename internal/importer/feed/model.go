package feed

import "github.com/cory-johannsen/discs/internal/importer"

// Document is the parsed form of one feed file. Brand, when set, applies to
// every disc in the file that does not name its own brand.
type Document struct {
	Brand string             `yaml:"brand,omitempty"`
	Discs []importer.RawDisc `yaml:"discs"`
}
