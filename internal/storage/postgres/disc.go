package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/discs/internal/catalog"
)

var _ catalog.Repository = (*DiscRepository)(nil)

// DiscRepository provides disc persistence operations.
type DiscRepository struct {
	db *pgxpool.Pool
}

// NewDiscRepository creates a DiscRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewDiscRepository(db *pgxpool.Pool) *DiscRepository {
	return &DiscRepository{db: db}
}

// AssertFindOne returns the first disc matching filter in opts' sort order.
//
// Postcondition: Returns the disc, catalog.ErrDiscNotFound when nothing
// matches, or catalog.ErrInvalidQuery for bad options or projections.
func (r *DiscRepository) AssertFindOne(ctx context.Context, filter catalog.DiscFilter, opts *catalog.Options, proj catalog.Projection) (catalog.Record, error) {
	one := catalog.Options{Limit: 1}
	if opts != nil {
		one.Sort = opts.Sort
		one.Skip = opts.Skip
	}
	recs, err := r.AssertFind(ctx, filter, &one, proj)
	if err != nil {
		return catalog.Record{}, err
	}
	return recs[0], nil
}

// AssertFind returns every disc matching filter.
//
// Postcondition: Returns at least one disc, catalog.ErrDiscNotFound when
// nothing matches, or catalog.ErrInvalidQuery for bad options or projections.
func (r *DiscRepository) AssertFind(ctx context.Context, filter catalog.DiscFilter, opts *catalog.Options, proj catalog.Projection) ([]catalog.Record, error) {
	columns, err := projectColumns(proj)
	if err != nil {
		return nil, err
	}
	q := &query{}
	where := q.where(filter)
	tail, err := q.orderAndPage(opts)
	if err != nil {
		return nil, err
	}

	sql := "SELECT " + strings.Join(columns, ", ") + " FROM discs" + where + tail
	rows, err := r.db.Query(ctx, sql, q.args...)
	if err != nil {
		return nil, fmt.Errorf("querying discs: %w", err)
	}
	defer rows.Close()

	var out []catalog.Record
	for rows.Next() {
		var rec catalog.Record
		if err := rows.Scan(scanTargets(&rec, columns)...); err != nil {
			return nil, fmt.Errorf("scanning disc: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating discs: %w", err)
	}
	if len(out) == 0 {
		return nil, catalog.ErrDiscNotFound
	}
	return out, nil
}

// CreateOrUpdate writes d to the disc matching filter, or inserts it when no
// disc matches. An update keeps the stored id and created_at. An insert
// without an ID is assigned a random one.
//
// Postcondition: Returns the stored disc as read back after the write.
func (r *DiscRepository) CreateOrUpdate(ctx context.Context, filter catalog.DiscFilter, d catalog.Disc) (catalog.Record, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return catalog.Record{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := &query{}
	var existingID string
	err = tx.QueryRow(ctx,
		"SELECT id FROM discs"+q.where(filter)+" ORDER BY id LIMIT 1 FOR UPDATE",
		q.args...,
	).Scan(&existingID)

	var rec catalog.Record
	switch {
	case err == nil:
		rec, err = updateDisc(ctx, tx, existingID, d)
	case errors.Is(err, pgx.ErrNoRows):
		if d.ID == "" {
			d.ID = catalog.NewID()
		}
		rec, err = insertDisc(ctx, tx, d)
	default:
		return catalog.Record{}, fmt.Errorf("locating disc: %w", err)
	}
	if err != nil {
		return catalog.Record{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return catalog.Record{}, fmt.Errorf("committing disc %s: %w", rec.ID, err)
	}
	return rec, nil
}

// AssertExists returns catalog.ErrDiscNotFound when no disc matches filter.
// Sort options are ignored; Skip is honored.
func (r *DiscRepository) AssertExists(ctx context.Context, filter catalog.DiscFilter, opts *catalog.Options) error {
	n, err := r.Count(ctx, filter, &catalog.Options{Limit: 1, Skip: skipOf(opts)})
	if err != nil {
		return err
	}
	if n == 0 {
		return catalog.ErrDiscNotFound
	}
	return nil
}

// Count returns the number of discs matching filter, after applying opts'
// Skip and Limit.
func (r *DiscRepository) Count(ctx context.Context, filter catalog.DiscFilter, opts *catalog.Options) (int64, error) {
	q := &query{}
	where := q.where(filter)
	var page *catalog.Options
	if opts != nil {
		page = &catalog.Options{Limit: opts.Limit, Skip: opts.Skip}
	}
	tail, err := q.page(page)
	if err != nil {
		return 0, err
	}

	sql := "SELECT COUNT(*) FROM discs" + where
	if tail != "" {
		sql = "SELECT COUNT(*) FROM (SELECT 1 FROM discs" + where + " ORDER BY id" + tail + ") AS matched"
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, q.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting discs: %w", err)
	}
	return n, nil
}

func skipOf(opts *catalog.Options) int {
	if opts == nil {
		return 0
	}
	return opts.Skip
}

// writableColumns are the columns set from a catalog.Disc on write, in the
// order of discValues.
var writableColumns = []string{
	"name", "brand", "category", "speed", "glide", "turn", "fade",
	"stability", "link", "pic", "name_slug", "brand_slug", "category_slug",
	"stability_slug", "color", "background_color",
}

func discValues(d catalog.Disc) []any {
	return []any{
		d.Name, d.Brand, d.Category, d.Speed, d.Glide, d.Turn, d.Fade,
		d.Stability, d.Link, d.Pic, d.NameSlug, d.BrandSlug, d.CategorySlug,
		d.StabilitySlug, d.Color, d.BackgroundColor,
	}
}

func insertDisc(ctx context.Context, tx pgx.Tx, d catalog.Disc) (catalog.Record, error) {
	cols := append([]string{"id"}, writableColumns...)
	args := append([]any{d.ID}, discValues(d)...)
	placeholders := make([]string, len(cols))
	updates := make([]string, len(writableColumns))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	for i, c := range writableColumns {
		updates[i] = c + " = EXCLUDED." + c
	}

	sql := "INSERT INTO discs (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ") + ", updated_at = NOW()" +
		" RETURNING " + strings.Join(catalog.Fields, ", ")

	var rec catalog.Record
	if err := tx.QueryRow(ctx, sql, args...).Scan(scanTargets(&rec, catalog.Fields)...); err != nil {
		return catalog.Record{}, fmt.Errorf("inserting disc %s: %w", d.ID, err)
	}
	return rec, nil
}

func updateDisc(ctx context.Context, tx pgx.Tx, id string, d catalog.Disc) (catalog.Record, error) {
	sets := make([]string, len(writableColumns))
	for i, c := range writableColumns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	args := append(discValues(d), id)

	sql := "UPDATE discs SET " + strings.Join(sets, ", ") + ", updated_at = NOW()" +
		fmt.Sprintf(" WHERE id = $%d", len(args)) +
		" RETURNING " + strings.Join(catalog.Fields, ", ")

	var rec catalog.Record
	if err := tx.QueryRow(ctx, sql, args...).Scan(scanTargets(&rec, catalog.Fields)...); err != nil {
		return catalog.Record{}, fmt.Errorf("updating disc %s: %w", id, err)
	}
	return rec, nil
}

// scanTargets returns pointers into rec for each of columns.
//
// Precondition: every column must be one of catalog.Fields.
func scanTargets(rec *catalog.Record, columns []string) []any {
	targets := make([]any, len(columns))
	for i, c := range columns {
		targets[i] = fieldPointer(rec, c)
	}
	return targets
}

func fieldPointer(rec *catalog.Record, column string) any {
	switch column {
	case "id":
		return &rec.ID
	case "name":
		return &rec.Name
	case "brand":
		return &rec.Brand
	case "category":
		return &rec.Category
	case "speed":
		return &rec.Speed
	case "glide":
		return &rec.Glide
	case "turn":
		return &rec.Turn
	case "fade":
		return &rec.Fade
	case "stability":
		return &rec.Stability
	case "link":
		return &rec.Link
	case "pic":
		return &rec.Pic
	case "name_slug":
		return &rec.NameSlug
	case "brand_slug":
		return &rec.BrandSlug
	case "category_slug":
		return &rec.CategorySlug
	case "stability_slug":
		return &rec.StabilitySlug
	case "color":
		return &rec.Color
	case "background_color":
		return &rec.BackgroundColor
	case "created_at":
		return &rec.CreatedAt
	case "updated_at":
		return &rec.UpdatedAt
	}
	panic(fmt.Sprintf("postgres: unknown disc column %q", column))
}
