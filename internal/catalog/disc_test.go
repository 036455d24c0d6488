package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/discs/internal/catalog"
)

func completeDisc() catalog.Disc {
	return catalog.Disc{
		ID:        "3f1c3f0e-6a39-5b8b-9c43-5f4c2a6d8e21",
		Name:      "Destroyer",
		Brand:     "Innova",
		Category:  "Distance Driver",
		Speed:     "12",
		Glide:     "5",
		Turn:      "-1",
		Fade:      "3",
		Stability: "Overstable",
	}
}

func TestMeetsMinCriteria_Complete(t *testing.T) {
	assert.True(t, catalog.MeetsMinCriteria(completeDisc()))
	assert.Empty(t, catalog.MissingFields(completeDisc()))
}

func TestMeetsMinCriteria_OptionalFieldsIgnored(t *testing.T) {
	d := completeDisc()
	d.Link = ""
	d.Pic = ""
	d.Color = ""
	d.NameSlug = ""
	assert.True(t, catalog.MeetsMinCriteria(d))
}

func TestMeetsMinCriteria_EachMandatoryFieldEmpty(t *testing.T) {
	blank := map[string]func(*catalog.Disc){
		"id":        func(d *catalog.Disc) { d.ID = "" },
		"name":      func(d *catalog.Disc) { d.Name = "" },
		"brand":     func(d *catalog.Disc) { d.Brand = "" },
		"category":  func(d *catalog.Disc) { d.Category = "" },
		"speed":     func(d *catalog.Disc) { d.Speed = "" },
		"glide":     func(d *catalog.Disc) { d.Glide = "" },
		"turn":      func(d *catalog.Disc) { d.Turn = "" },
		"fade":      func(d *catalog.Disc) { d.Fade = "" },
		"stability": func(d *catalog.Disc) { d.Stability = "" },
	}
	for field, fn := range blank {
		t.Run(field, func(t *testing.T) {
			d := completeDisc()
			fn(&d)
			assert.False(t, catalog.MeetsMinCriteria(d))
			assert.Equal(t, []string{field}, catalog.MissingFields(d))
		})
	}
}

func TestMeetsMinCriteria_ZeroValue(t *testing.T) {
	assert.False(t, catalog.MeetsMinCriteria(catalog.Disc{}))
	assert.Len(t, catalog.MissingFields(catalog.Disc{}), 9)
}

// Property: MeetsMinCriteria agrees with MissingFields for arbitrary discs.
func TestPropertyMissingFieldsAgreesWithCriteria(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		field := func(label string) string {
			return rapid.SampledFrom([]string{"", "x", "1.5"}).Draw(t, label)
		}
		d := catalog.Disc{
			ID: field("id"), Name: field("name"), Brand: field("brand"),
			Category: field("category"), Speed: field("speed"), Glide: field("glide"),
			Turn: field("turn"), Fade: field("fade"), Stability: field("stability"),
		}
		assert.Equal(t, len(catalog.MissingFields(d)) == 0, catalog.MeetsMinCriteria(d))
	})
}
