package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/discs/internal/catalog"
)

// Store is the subset of catalog.Repository the importer writes through.
type Store interface {
	CreateOrUpdate(ctx context.Context, filter catalog.DiscFilter, d catalog.Disc) (catalog.Record, error)
}

// Result summarizes one import run.
type Result struct {
	// Loaded is the number of raw records read from the source.
	Loaded int
	// Accepted is the number of distinct discs that met the minimum criteria.
	Accepted int
	// Rejected is the number of records discarded as incomplete.
	Rejected int
	// Stored is the number of discs written to the store.
	Stored int
}

// Importer orchestrates disc import from a Source into a Store.
type Importer struct {
	source     Source
	store      Store
	normalizer Normalizer
	logger     *zap.Logger
}

// New constructs an Importer. A nil store makes Run a dry run that only
// normalizes, validates, and writes the snapshot.
//
// Precondition: source and logger must be non-nil.
// Postcondition: returns a non-nil Importer using DefaultNormalizer.
func New(source Source, store Store, logger *zap.Logger) *Importer {
	return &Importer{
		source:     source,
		store:      store,
		normalizer: DefaultNormalizer,
		logger:     logger,
	}
}

// WithNormalizer replaces the Normalizer used by Run.
func (imp *Importer) WithNormalizer(n Normalizer) *Importer {
	imp.normalizer = n
	return imp
}

// Run loads raw discs from path, normalizes them, discards incomplete ones,
// upserts the rest keyed by ID, and, when snapshotPath is non-empty, writes
// the accepted discs there as JSON. Duplicate IDs within one run collapse to
// the last occurrence.
//
// Snapshot write failures are logged, not returned.
//
// Precondition: path must satisfy the source's layout requirements.
// Postcondition: every accepted disc is stored, or an error is returned.
func (imp *Importer) Run(ctx context.Context, path, snapshotPath string) (Result, error) {
	overall := time.Now()
	var res Result

	t0 := time.Now()
	raws, err := imp.source.Load(ctx, path)
	if err != nil {
		return res, fmt.Errorf("loading source: %w", err)
	}
	res.Loaded = len(raws)
	imp.logger.Info("loaded feed",
		zap.String("path", path),
		zap.Int("records", len(raws)),
		zap.Duration("elapsed", time.Since(t0)),
	)

	accepted := make([]catalog.Disc, 0, len(raws))
	index := make(map[string]int, len(raws))
	for _, raw := range raws {
		d := imp.normalizer.Normalize(raw)
		if !catalog.MeetsMinCriteria(d) {
			res.Rejected++
			imp.logger.Warn("discarding incomplete disc",
				zap.String("name", raw.Name),
				zap.String("brand", raw.Brand),
				zap.Strings("missing", catalog.MissingFields(d)),
			)
			continue
		}
		if i, ok := index[d.ID]; ok {
			imp.logger.Debug("duplicate disc id, keeping last", zap.String("id", d.ID), zap.String("name", d.Name))
			accepted[i] = d
			continue
		}
		index[d.ID] = len(accepted)
		accepted = append(accepted, d)
	}
	res.Accepted = len(accepted)

	if imp.store != nil {
		t1 := time.Now()
		for _, d := range accepted {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("storing discs: %w", err)
			}
			if _, err := imp.store.CreateOrUpdate(ctx, catalog.ByID(d.ID), d); err != nil {
				return res, fmt.Errorf("storing disc %q (%s): %w", d.Name, d.ID, err)
			}
			res.Stored++
		}
		imp.logger.Info("stored discs", zap.Int("count", res.Stored), zap.Duration("elapsed", time.Since(t1)))
	}

	if snapshotPath != "" {
		catalog.WriteDataToFile(imp.logger, accepted, snapshotPath)
	}

	imp.logger.Info("import complete",
		zap.Int("loaded", res.Loaded),
		zap.Int("accepted", res.Accepted),
		zap.Int("rejected", res.Rejected),
		zap.Int("stored", res.Stored),
		zap.Duration("elapsed", time.Since(overall)),
	)
	return res, nil
}
