package feed

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseDocument parses a feed file. JSON feeds are accepted as well, since
// JSON is a subset of YAML.
//
// Precondition: data must be valid YAML or JSON.
// Postcondition: returns a non-nil Document with the document-level brand
// applied to brandless discs, or a non-nil error.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing feed document: %w", err)
	}
	if doc.Brand != "" {
		for i := range doc.Discs {
			if doc.Discs[i].Brand == "" {
				doc.Discs[i].Brand = doc.Brand
			}
		}
	}
	return &doc, nil
}
