package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/config"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/logging"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/media"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/minio"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/postgres"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/seed"
	"github.com/njprem/ExploreIndia_APP_BackEnd/migrations"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Service: "explore-india-seed", Level: cfg.LogLevel, LogstashTCP: cfg.LogstashTCPAddr})
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrations.Migrate(db.DB); err != nil {
		return err
	}

	seedCfg := seed.Config{Bucket: cfg.MinIOBucketPlaces, MaxDimension: cfg.SeedImageMaxDimension}
	var storage ports.ObjectStorage
	var processor media.Processor
	if cfg.MinIOConfigured() && cfg.SeedImageDir != "" {
		client, err := minio.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return err
		}
		store := minio.NewStorage(client, cfg.MinIOPublicURL)
		if err := store.EnsureBucket(ctx, cfg.MinIOBucketPlaces); err != nil {
			return err
		}
		storage = store
		processor = media.NewScaleProcessor(cfg.SeedImageMaxDimension)
		seedCfg.Images = os.DirFS(cfg.SeedImageDir)
	} else {
		logger.Info().Msg("image upload disabled: MinIO or SEED_IMAGE_DIR not configured")
	}

	entries, err := seed.DefaultCatalog()
	if err != nil {
		return err
	}
	report, err := seed.NewSeeder(postgres.NewPlaceRepo(db), storage, processor, seedCfg).Run(ctx, entries)
	if err != nil {
		return err
	}
	logger.Info().
		Int("created", len(report.Created)).
		Int("skipped", len(report.Skipped)).
		Msg("seeding complete")
	return nil
}
