package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/auction-draft/internal/cache"
	"github.com/bagdasarian/auction-draft/internal/config"
	"github.com/bagdasarian/auction-draft/internal/db"
	"github.com/bagdasarian/auction-draft/internal/events"
	"github.com/bagdasarian/auction-draft/internal/handler"
	"github.com/bagdasarian/auction-draft/internal/handler/live"
	"github.com/bagdasarian/auction-draft/internal/handler/server"
	"github.com/bagdasarian/auction-draft/internal/logger"
	"github.com/bagdasarian/auction-draft/internal/repository/postgres"
	"github.com/bagdasarian/auction-draft/internal/service"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := db.MustLoad(cfg)
	log.Info("connected to database")
	defer database.Close()

	if err := db.Migrate(ctx, database, logger.Component(log, "migrations")); err != nil {
		log.WithError(err).Fatal("failed to apply migrations")
	}

	teamRepo := postgres.NewTeamRepository(database)
	playerRepo := postgres.NewPlayerRepository(database)
	draftRepo := postgres.NewDraftRepository(database)
	statsRepo := postgres.NewStatsRepository(database)
	txManager := postgres.NewTxManager(database, cfg.Database.MaxTxRetries, logger.Component(log, "tx"))

	hub := live.NewHub(logger.Component(log, "live"))
	go hub.Run(ctx)

	var teamCache service.TeamCache = cache.NopTeamCache{}
	publishers := []events.Publisher{hub}
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer redisClient.Close()

		teamCache = cache.NewTeamCache(redisClient, cfg.Redis.CacheTTL)
		publishers = append(publishers, events.NewRedisStreamPublisher(redisClient, cfg.Redis.Stream))
		log.WithField("stream", cfg.Redis.Stream).Info("redis cache and event stream enabled")
	}

	teamService := service.NewTeamService(teamRepo, draftRepo, teamCache, cfg.Draft.InitialBudget, logger.Component(log, "teams"))
	playerService := service.NewPlayerService(playerRepo)
	statsService := service.NewStatsService(statsRepo)
	draftService := service.NewDraftService(
		txManager,
		teamService,
		playerService,
		teamCache,
		events.NewFanout(publishers...),
		logger.Component(log, "draft"),
	)

	h := handler.NewHandler(teamService, playerService, draftService, statsService, logger.Component(log, "http"))
	srv := server.NewServer(h, hub, cfg.Server.Addr, logger.Component(log, "server"))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		os.Exit(1)
	}
}
