package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"
)

// ErrDiscNotFound is returned by the Assert* repository operations when no
// disc matches the filter.
var ErrDiscNotFound = errors.New("disc not found")

// ErrInvalidQuery is returned when options or a projection reference
// unknown fields or mix inclusion and exclusion.
var ErrInvalidQuery = errors.New("invalid query")

// RegexFilter matches a field against a regular expression. Options "i"
// makes the match case-insensitive.
type RegexFilter struct {
	Pattern string `json:"$regex"`
	Options string `json:"$options"`
}

// Regexify builds a case-insensitive RegexFilter for field.
func Regexify(field string) *RegexFilter {
	return &RegexFilter{Pattern: field, Options: "i"}
}

// CaseInsensitive reports whether the filter carries the "i" option.
func (r RegexFilter) CaseInsensitive() bool {
	return strings.ContainsRune(r.Options, 'i')
}

// DiscFilter selects discs. Nil fields are unconstrained; set fields are
// combined with AND.
type DiscFilter struct {
	ID            *string      `json:"id,omitempty"`
	NameSlug      *RegexFilter `json:"name_slug,omitempty"`
	BrandSlug     *RegexFilter `json:"brand_slug,omitempty"`
	CategorySlug  *RegexFilter `json:"category_slug,omitempty"`
	StabilitySlug *string      `json:"stability_slug,omitempty"`
	Speed         *string      `json:"speed,omitempty"`
	Glide         *string      `json:"glide,omitempty"`
	Turn          *string      `json:"turn,omitempty"`
	Fade          *string      `json:"fade,omitempty"`
}

// ByID returns a filter matching exactly one disc ID.
func ByID(id string) DiscFilter {
	return DiscFilter{ID: &id}
}

// Sort directions.
const (
	Ascending  = 1
	Descending = -1
)

// SortField orders results by a disc field.
type SortField struct {
	Field     string
	Direction int
}

// Options controls ordering and paging. A zero Limit means no limit.
type Options struct {
	Sort  []SortField
	Limit int
	Skip  int
	// New asks CreateOrUpdate to return the document after the write.
	// Repositories in this module always do.
	New bool
}

// Projection selects returned fields: 1 includes, 0 excludes. A nil or
// empty Projection returns every field; "id" is always returned.
type Projection map[string]int

// Fields lists the persisted disc fields that filters, sorts and projections
// may reference.
var Fields = []string{
	"id", "name", "brand", "category", "speed", "glide", "turn", "fade",
	"stability", "link", "pic", "name_slug", "brand_slug", "category_slug",
	"stability_slug", "color", "background_color", "created_at", "updated_at",
}

// IsField reports whether name is one of Fields.
func IsField(name string) bool {
	return slices.Contains(Fields, name)
}

// Repository is the persistence contract for discs.
type Repository interface {
	// AssertFindOne returns the first matching disc or ErrDiscNotFound.
	AssertFindOne(ctx context.Context, filter DiscFilter, opts *Options, proj Projection) (Record, error)
	// AssertFind returns all matching discs, or ErrDiscNotFound when none match.
	AssertFind(ctx context.Context, filter DiscFilter, opts *Options, proj Projection) ([]Record, error)
	// CreateOrUpdate updates the disc matching filter, or inserts d when none does.
	CreateOrUpdate(ctx context.Context, filter DiscFilter, d Disc) (Record, error)
	// AssertExists returns ErrDiscNotFound when no disc matches filter.
	AssertExists(ctx context.Context, filter DiscFilter, opts *Options) error
	// Count returns the number of discs matching filter.
	Count(ctx context.Context, filter DiscFilter, opts *Options) (int64, error)
}
