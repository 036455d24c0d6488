// Package main provides the disc import command: it reads a feed, normalizes
// and validates each disc, and upserts the accepted ones into PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/discs/internal/catalog"
	"github.com/cory-johannsen/discs/internal/config"
	"github.com/cory-johannsen/discs/internal/importer"
	"github.com/cory-johannsen/discs/internal/importer/feed"
	"github.com/cory-johannsen/discs/internal/observability"
	"github.com/cory-johannsen/discs/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	feedPath := flag.String("feed", "", "feed file or directory (default: catalog.feed_path)")
	snapshotPath := flag.String("snapshot", "", "write accepted discs as JSON to this path (default: catalog.snapshot_path)")
	dryRun := flag.Bool("dry-run", false, "normalize and validate without touching the database")
	runMigrations := flag.Bool("migrate", false, "apply pending schema migrations before importing")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "import-discs")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *feedPath == "" {
		*feedPath = cfg.Catalog.FeedPath
	}
	if *snapshotPath == "" {
		*snapshotPath = cfg.Catalog.SnapshotPath
	}

	ns, err := cfg.Catalog.Namespace()
	if err != nil {
		logger.Fatal("resolving hash namespace", zap.Error(err))
	}
	normalizer := importer.NewNormalizer(catalog.NewHasher(ns))

	var store importer.Store
	if !*dryRun {
		if *runMigrations {
			if err := postgres.MigrateUp(cfg.Database.DSN()); err != nil {
				logger.Fatal("migrating database", zap.Error(err))
			}
			logger.Info("schema up to date")
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Health(ctx, 5*time.Second); err != nil {
			logger.Fatal("database not ready", zap.Error(err))
		}
		store = pool.Discs()
	}

	logger.Info("starting import",
		zap.String("feed", *feedPath),
		zap.String("snapshot", *snapshotPath),
		zap.Bool("dry_run", *dryRun),
	)

	res, err := importer.New(feed.NewSource(), store, logger).
		WithNormalizer(normalizer).
		Run(ctx, *feedPath, *snapshotPath)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	logger.Info("done",
		zap.Int("loaded", res.Loaded),
		zap.Int("accepted", res.Accepted),
		zap.Int("rejected", res.Rejected),
		zap.Int("stored", res.Stored),
		zap.Duration("elapsed", time.Since(start)),
	)
}
