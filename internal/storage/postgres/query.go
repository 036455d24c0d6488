package postgres

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/discs/internal/catalog"
)

// query accumulates positional arguments while SQL fragments are built.
type query struct {
	args []any
}

func (q *query) bind(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// where renders filter as a WHERE clause, or "" when filter is empty.
func (q *query) where(filter catalog.DiscFilter) string {
	var conds []string
	eq := func(column string, v *string) {
		if v != nil {
			conds = append(conds, column+" = "+q.bind(*v))
		}
	}
	re := func(column string, f *catalog.RegexFilter) {
		if f == nil {
			return
		}
		op := " ~ "
		if f.CaseInsensitive() {
			op = " ~* "
		}
		conds = append(conds, column+op+q.bind(f.Pattern))
	}

	eq("id", filter.ID)
	re("name_slug", filter.NameSlug)
	re("brand_slug", filter.BrandSlug)
	re("category_slug", filter.CategorySlug)
	eq("stability_slug", filter.StabilitySlug)
	eq("speed", filter.Speed)
	eq("glide", filter.Glide)
	eq("turn", filter.Turn)
	eq("fade", filter.Fade)

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// orderAndPage renders ORDER BY, LIMIT and OFFSET for opts. Results are
// ordered by id when opts carries no sort, and id breaks ties otherwise.
func (q *query) orderAndPage(opts *catalog.Options) (string, error) {
	var sort []catalog.SortField
	if opts != nil {
		sort = opts.Sort
	}
	order, err := orderBy(sort)
	if err != nil {
		return "", err
	}
	page, err := q.page(opts)
	if err != nil {
		return "", err
	}
	return order + page, nil
}

// page renders LIMIT and OFFSET for opts, or "" when neither applies.
func (q *query) page(opts *catalog.Options) (string, error) {
	if opts == nil {
		return "", nil
	}
	if opts.Limit < 0 {
		return "", fmt.Errorf("%w: negative limit %d", catalog.ErrInvalidQuery, opts.Limit)
	}
	if opts.Skip < 0 {
		return "", fmt.Errorf("%w: negative skip %d", catalog.ErrInvalidQuery, opts.Skip)
	}
	var b strings.Builder
	if opts.Limit > 0 {
		b.WriteString(" LIMIT " + q.bind(opts.Limit))
	}
	if opts.Skip > 0 {
		b.WriteString(" OFFSET " + q.bind(opts.Skip))
	}
	return b.String(), nil
}

func orderBy(sort []catalog.SortField) (string, error) {
	terms := make([]string, 0, len(sort)+1)
	sawID := false
	for _, s := range sort {
		if !catalog.IsField(s.Field) {
			return "", fmt.Errorf("%w: unknown sort field %q", catalog.ErrInvalidQuery, s.Field)
		}
		switch s.Direction {
		case catalog.Ascending:
			terms = append(terms, s.Field+" ASC")
		case catalog.Descending:
			terms = append(terms, s.Field+" DESC")
		default:
			return "", fmt.Errorf("%w: sort direction for %q must be 1 or -1, got %d", catalog.ErrInvalidQuery, s.Field, s.Direction)
		}
		if s.Field == "id" {
			sawID = true
		}
	}
	if !sawID {
		terms = append(terms, "id ASC")
	}
	return " ORDER BY " + strings.Join(terms, ", "), nil
}

// projectColumns resolves proj to the selected columns in catalog.Fields
// order. "id" is always selected.
//
// Postcondition: Returns catalog.ErrInvalidQuery for unknown fields, values
// other than 0 or 1, or a projection mixing inclusion and exclusion.
func projectColumns(proj catalog.Projection) ([]string, error) {
	include, exclude := false, false
	for field, v := range proj {
		if !catalog.IsField(field) {
			return nil, fmt.Errorf("%w: unknown projection field %q", catalog.ErrInvalidQuery, field)
		}
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: projection value for %q must be 0 or 1, got %d", catalog.ErrInvalidQuery, field, v)
		}
		if field == "id" {
			continue
		}
		if v == 1 {
			include = true
		} else {
			exclude = true
		}
	}
	if include && exclude {
		return nil, fmt.Errorf("%w: projection mixes inclusion and exclusion", catalog.ErrInvalidQuery)
	}

	columns := make([]string, 0, len(catalog.Fields))
	for _, f := range catalog.Fields {
		v, listed := proj[f]
		switch {
		case f == "id":
			columns = append(columns, f)
		case include:
			if listed && v == 1 {
				columns = append(columns, f)
			}
		default:
			if !listed || v == 1 {
				columns = append(columns, f)
			}
		}
	}
	return columns, nil
}
