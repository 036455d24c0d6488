package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/discs/internal/catalog"
	"github.com/cory-johannsen/discs/internal/storage/postgres"
	"github.com/cory-johannsen/discs/internal/testutil"
)

const defaultTimeout = 5 * time.Second

func newTestRepo(t *testing.T) (*postgres.DiscRepository, *testutil.PostgresContainer) {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.Pool.Discs(), pc
}

func disc(id, name, brand, speed string) catalog.Disc {
	return catalog.Disc{
		ID:            id,
		Name:          name,
		Brand:         brand,
		Category:      "Distance Driver",
		Speed:         speed,
		Glide:         "5",
		Turn:          "-1",
		Fade:          "3",
		Stability:     "Overstable",
		NameSlug:      catalog.Slugify(name),
		BrandSlug:     catalog.Slugify(brand),
		CategorySlug:  "distance-driver",
		StabilitySlug: "overstable",
	}
}

func seed(t *testing.T, repo *postgres.DiscRepository, discs ...catalog.Disc) {
	t.Helper()
	ctx := context.Background()
	for _, d := range discs {
		_, err := repo.CreateOrUpdate(ctx, catalog.ByID(d.ID), d)
		require.NoError(t, err)
	}
}

func TestDiscRepository(t *testing.T) {
	repo, pc := newTestRepo(t)
	ctx := context.Background()

	t.Run("CreateOrUpdate inserts then updates", func(t *testing.T) {
		pc.Reset(t)
		d := disc("d1", "Destroyer", "Innova", "12")

		created, err := repo.CreateOrUpdate(ctx, catalog.ByID(d.ID), d)
		require.NoError(t, err)
		assert.Equal(t, d, created.Disc)
		assert.False(t, created.CreatedAt.IsZero())

		d.Speed = "13"
		updated, err := repo.CreateOrUpdate(ctx, catalog.ByID(d.ID), d)
		require.NoError(t, err)
		assert.Equal(t, "13", updated.Speed)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

		n, err := repo.Count(ctx, catalog.DiscFilter{}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("CreateOrUpdate by slug keeps stored id", func(t *testing.T) {
		pc.Reset(t)
		seed(t, repo, disc("d1", "Destroyer", "Innova", "12"))

		replacement := disc("other", "Destroyer", "Innova", "11")
		got, err := repo.CreateOrUpdate(ctx, catalog.DiscFilter{NameSlug: &catalog.RegexFilter{Pattern: "^destroyer$"}}, replacement)
		require.NoError(t, err)
		assert.Equal(t, "d1", got.ID)
		assert.Equal(t, "11", got.Speed)
	})

	t.Run("CreateOrUpdate assigns an id when inserting without one", func(t *testing.T) {
		pc.Reset(t)
		got, err := repo.CreateOrUpdate(ctx, catalog.DiscFilter{Speed: strPtr("99")}, disc("", "Ghost", "Nobody", "7"))
		require.NoError(t, err)
		assert.Len(t, got.ID, 36)
	})

	t.Run("AssertFind filters sorts and pages", func(t *testing.T) {
		pc.Reset(t)
		seed(t, repo,
			disc("a", "Destroyer", "Innova", "12"),
			disc("b", "Teebird", "Innova", "7"),
			disc("c", "Buzzz", "Discraft", "5"),
		)

		got, err := repo.AssertFind(ctx, catalog.DiscFilter{BrandSlug: catalog.Regexify("INNOVA")}, &catalog.Options{
			Sort: []catalog.SortField{{Field: "name", Direction: catalog.Descending}},
		}, nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Teebird", got[0].Name)
		assert.Equal(t, "Destroyer", got[1].Name)

		paged, err := repo.AssertFind(ctx, catalog.DiscFilter{}, &catalog.Options{Limit: 1, Skip: 1}, nil)
		require.NoError(t, err)
		require.Len(t, paged, 1)
		assert.Equal(t, "b", paged[0].ID)
	})

	t.Run("AssertFind applies projection", func(t *testing.T) {
		pc.Reset(t)
		seed(t, repo, disc("a", "Destroyer", "Innova", "12"))

		got, err := repo.AssertFindOne(ctx, catalog.ByID("a"), nil, catalog.Projection{"name": 1})
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
		assert.Equal(t, "Destroyer", got.Name)
		assert.Empty(t, got.Brand)
		assert.True(t, got.CreatedAt.IsZero())
	})

	t.Run("case-sensitive regex does not fold case", func(t *testing.T) {
		pc.Reset(t)
		seed(t, repo, disc("a", "Destroyer", "Innova", "12"))

		_, err := repo.AssertFind(ctx, catalog.DiscFilter{BrandSlug: &catalog.RegexFilter{Pattern: "INNOVA"}}, nil, nil)
		assert.ErrorIs(t, err, catalog.ErrDiscNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		pc.Reset(t)

		_, err := repo.AssertFindOne(ctx, catalog.ByID("missing"), nil, nil)
		assert.ErrorIs(t, err, catalog.ErrDiscNotFound)
		assert.ErrorIs(t, repo.AssertExists(ctx, catalog.ByID("missing"), nil), catalog.ErrDiscNotFound)
	})

	t.Run("AssertExists and Count", func(t *testing.T) {
		pc.Reset(t)
		seed(t, repo,
			disc("a", "Destroyer", "Innova", "12"),
			disc("b", "Wraith", "Innova", "11"),
		)

		assert.NoError(t, repo.AssertExists(ctx, catalog.DiscFilter{Speed: strPtr("11")}, nil))
		assert.ErrorIs(t, repo.AssertExists(ctx, catalog.DiscFilter{}, &catalog.Options{Skip: 2}), catalog.ErrDiscNotFound)

		n, err := repo.Count(ctx, catalog.DiscFilter{StabilitySlug: strPtr("overstable")}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = repo.Count(ctx, catalog.DiscFilter{}, &catalog.Options{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("invalid query", func(t *testing.T) {
		_, err := repo.AssertFind(ctx, catalog.DiscFilter{}, nil, catalog.Projection{"name": 1, "brand": 0})
		assert.ErrorIs(t, err, catalog.ErrInvalidQuery)
	})
}

func TestPool_Health(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	ctx := context.Background()

	assert.Error(t, pc.Pool.Health(ctx, defaultTimeout))
	pc.ApplyMigrations(t)
	assert.NoError(t, pc.Pool.Health(ctx, defaultTimeout))
}

func strPtr(s string) *string { return &s }
