package feed

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/cory-johannsen/discs/internal/importer"
	"github.com/cory-johannsen/discs/internal/markup"
)

// discClass marks the element describing one disc on a catalog page.
const discClass = "disc"

// ParseHTML extracts discs from a catalog listing page. Each element with
// class "disc" is one disc: its text is the name, href the link, and the
// data-brand, data-category, data-speed, data-glide, data-turn, data-fade,
// data-pic, data-color and data-background-color attributes the remaining
// fields. The class tokens of the element's great-grandparent are kept as
// the disc's stability hint.
//
// Precondition: data must be an HTML document.
// Postcondition: returns the discs in document order, or a non-nil error.
func ParseHTML(data []byte) ([]importer.RawDisc, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing catalog page: %w", err)
	}

	nodes := markup.FindAll(root, func(n *html.Node) bool { return markup.HasClass(n, discClass) })
	discs := make([]importer.RawDisc, 0, len(nodes))
	for _, n := range nodes {
		discs = append(discs, importer.RawDisc{
			ID:              markup.Attr(n, "data-id"),
			Name:            markup.Text(n),
			Brand:           markup.Attr(n, "data-brand"),
			Category:        markup.Attr(n, "data-category"),
			Speed:           markup.Attr(n, "data-speed"),
			Glide:           markup.Attr(n, "data-glide"),
			Turn:            markup.Attr(n, "data-turn"),
			Fade:            markup.Attr(n, "data-fade"),
			Link:            markup.Attr(n, "href"),
			Pic:             markup.Attr(n, "data-pic"),
			Color:           markup.Attr(n, "data-color"),
			BackgroundColor: markup.Attr(n, "data-background-color"),
			Classes:         markup.ClassHint(n),
		})
	}
	return discs, nil
}
