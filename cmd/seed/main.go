package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/auction-draft/internal/cache"
	"github.com/bagdasarian/auction-draft/internal/config"
	"github.com/bagdasarian/auction-draft/internal/db"
	"github.com/bagdasarian/auction-draft/internal/ingest"
	"github.com/bagdasarian/auction-draft/internal/logger"
	"github.com/bagdasarian/auction-draft/internal/repository/postgres"
	"github.com/bagdasarian/auction-draft/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("seed failed")
		os.Exit(1)
	}
	log.Info("seed completed")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	database, err := db.NewPostgres(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, logger.Component(log, "migrations")); err != nil {
		return err
	}

	var teamCache service.TeamCache = cache.NopTeamCache{}
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		teamCache = cache.NewTeamCache(redisClient, cfg.Redis.CacheTTL)
	}

	teamService := service.NewTeamService(
		postgres.NewTeamRepository(database),
		postgres.NewDraftRepository(database),
		teamCache,
		cfg.Draft.InitialBudget,
		logger.Component(log, "teams"),
	)

	fetcher := ingest.NewChromeFetcher(time.Minute)
	defer fetcher.Close()

	importer := ingest.NewImporter(
		fetcher,
		postgres.NewPlayerRepository(database),
		teamService,
		cfg.Scoring.Rules(),
		cfg.Ingest.BaseURL,
		cfg.Ingest.Workers,
		logger.Component(log, "ingest"),
	)

	if _, err := importer.ImportProjections(ctx); err != nil {
		return err
	}

	values, err := readFile(cfg.Ingest.CheatsheetPath, ingest.ReadCheatsheet)
	if err != nil {
		return err
	}
	if err := importer.ApplyValues(ctx, values); err != nil {
		return err
	}

	teams, err := readFile(cfg.Ingest.TeamsPath, ingest.ReadTeams)
	if err != nil {
		return err
	}
	_, err = importer.CreateTeams(ctx, teams)
	return err
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}
