package importer

import "context"

// RawDisc is a disc as it appears in a feed, before normalization. Field
// names match the feed file schema.
type RawDisc struct {
	ID              string   `yaml:"id,omitempty"`
	Name            string   `yaml:"name"`
	Brand           string   `yaml:"brand"`
	Category        string   `yaml:"category"`
	Speed           string   `yaml:"speed"`
	Glide           string   `yaml:"glide"`
	Turn            string   `yaml:"turn"`
	Fade            string   `yaml:"fade"`
	Link            string   `yaml:"link,omitempty"`
	Pic             string   `yaml:"pic,omitempty"`
	Color           string   `yaml:"color,omitempty"`
	BackgroundColor string   `yaml:"background_color,omitempty"`
	Classes         []string `yaml:"classes,omitempty"`
}

// Source loads raw discs from a format-specific location.
//
// Precondition: path must exist and match the layout the Source expects.
// Postcondition: returns the raw discs in source order, or a non-nil error.
type Source interface {
	Load(ctx context.Context, path string) ([]RawDisc, error)
}
