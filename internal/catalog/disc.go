// Package catalog holds the disc model and the pure normalization and
// validation helpers applied to discs before they are persisted.
package catalog

import "time"

// Disc is a flight-disc catalog entry. Flight ratings are kept as the decimal
// strings found in the source so that no precision or formatting is lost.
type Disc struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Category        string `json:"category"`
	Speed           string `json:"speed"`
	Glide           string `json:"glide"`
	Turn            string `json:"turn"`
	Fade            string `json:"fade"`
	Stability       string `json:"stability"`
	Link            string `json:"link"`
	Pic             string `json:"pic"`
	NameSlug        string `json:"name_slug"`
	BrandSlug       string `json:"brand_slug"`
	CategorySlug    string `json:"category_slug"`
	StabilitySlug   string `json:"stability_slug"`
	Color           string `json:"color"`
	BackgroundColor string `json:"background_color"`
}

// Record is the persisted form of a Disc.
type Record struct {
	Disc
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MissingFields returns the names of the mandatory fields that are empty, in
// declaration order.
//
// Postcondition: len(MissingFields(d)) == 0 iff MeetsMinCriteria(d).
func MissingFields(d Disc) []string {
	required := []struct {
		name  string
		value string
	}{
		{"id", d.ID},
		{"name", d.Name},
		{"brand", d.Brand},
		{"category", d.Category},
		{"speed", d.Speed},
		{"glide", d.Glide},
		{"turn", d.Turn},
		{"fade", d.Fade},
		{"stability", d.Stability},
	}
	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// MeetsMinCriteria reports whether every mandatory field of d is populated.
// A false result means the disc must be discarded or flagged, not stored.
func MeetsMinCriteria(d Disc) bool {
	return d.ID != "" &&
		d.Name != "" &&
		d.Brand != "" &&
		d.Category != "" &&
		d.Speed != "" &&
		d.Glide != "" &&
		d.Turn != "" &&
		d.Fade != "" &&
		d.Stability != ""
}
