package importer

import (
	"strings"

	"github.com/cory-johannsen/discs/internal/catalog"
)

// Normalizer turns raw feed records into catalog discs.
type Normalizer struct {
	hasher catalog.Hasher
}

// NewNormalizer returns a Normalizer deriving IDs with hasher.
func NewNormalizer(hasher catalog.Hasher) Normalizer {
	return Normalizer{hasher: hasher}
}

// DefaultNormalizer derives IDs in catalog.IDHashNamespace.
var DefaultNormalizer = NewNormalizer(catalog.NewHasher(catalog.IDHashNamespace))

// Normalize converts raw using DefaultNormalizer.
func Normalize(raw RawDisc) catalog.Disc {
	return DefaultNormalizer.Normalize(raw)
}

// Normalize converts raw into a Disc: flight ratings get their leading zero
// restored, the category is canonicalized, stability is derived from the
// class hint or the ratings, and the slugs are filled in. When raw carries no
// ID, the ID is the hash of brand followed by name, so re-importing the same
// disc yields the same ID.
//
// Postcondition: the result is not guaranteed complete; callers check
// catalog.MeetsMinCriteria.
func (n Normalizer) Normalize(raw RawDisc) catalog.Disc {
	name := strings.TrimSpace(raw.Name)
	brand := strings.TrimSpace(raw.Brand)
	category := catalog.ParseCategory(strings.TrimSpace(raw.Category))

	d := catalog.Disc{
		ID:              strings.TrimSpace(raw.ID),
		Name:            name,
		Brand:           brand,
		Category:        category,
		Speed:           catalog.ParseDecimalString(strings.TrimSpace(raw.Speed)),
		Glide:           catalog.ParseDecimalString(strings.TrimSpace(raw.Glide)),
		Turn:            catalog.ParseDecimalString(strings.TrimSpace(raw.Turn)),
		Fade:            catalog.ParseDecimalString(strings.TrimSpace(raw.Fade)),
		Link:            strings.TrimSpace(raw.Link),
		Pic:             strings.TrimSpace(raw.Pic),
		Color:           strings.TrimSpace(raw.Color),
		BackgroundColor: strings.TrimSpace(raw.BackgroundColor),
		NameSlug:        catalog.Slugify(name),
		BrandSlug:       catalog.Slugify(brand),
		CategorySlug:    catalog.Slugify(category),
	}

	if stability, ok := catalog.ParseStability(raw.Classes, d.Turn, d.Fade); ok {
		d.Stability = stability
		d.StabilitySlug = catalog.Slugify(stability)
	}

	if d.ID == "" && name != "" && brand != "" {
		d.ID = n.hasher.Hash(brand + name)
	}
	return d
}
