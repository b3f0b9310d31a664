//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/auction-draft/internal/cache"
	"github.com/bagdasarian/auction-draft/internal/db"
	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository/postgres"
	"github.com/bagdasarian/auction-draft/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const initialBudget = 200

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	logger, _ := test.NewNullLogger()
	require.NoError(t, db.Migrate(ctx, database, logger), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	events chan *domain.DraftEvent
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan *domain.DraftEvent, 64)}
}

func (p *recordingPublisher) Publish(ctx context.Context, event *domain.DraftEvent) error {
	p.events <- event
	return nil
}

type draftEnv struct {
	db        *sql.DB
	players   *playerSeeder
	teams     service.TeamService
	playerSvc service.PlayerService
	drafts    service.DraftService
	stats     service.StatsService
	events    *recordingPublisher
}

func newDraftEnv(t *testing.T) *draftEnv {
	database := setupTestDB(t)
	logger, _ := test.NewNullLogger()

	teamRepo := postgres.NewTeamRepository(database)
	playerRepo := postgres.NewPlayerRepository(database)
	draftRepo := postgres.NewDraftRepository(database)

	teamService := service.NewTeamService(teamRepo, draftRepo, cache.NopTeamCache{}, initialBudget, logger)
	playerService := service.NewPlayerService(playerRepo)
	publisher := newRecordingPublisher()

	return &draftEnv{
		db:        database,
		players:   &playerSeeder{t: t, repo: playerRepo},
		teams:     teamService,
		playerSvc: playerService,
		drafts: service.NewDraftService(
			postgres.NewTxManager(database, 5, logger),
			teamService,
			playerService,
			cache.NopTeamCache{},
			publisher,
			logger,
		),
		stats:  service.NewStatsService(postgres.NewStatsRepository(database)),
		events: publisher,
	}
}

type playerSeeder struct {
	t    *testing.T
	repo interface {
		Upsert(ctx context.Context, player *domain.Player) error
	}
}

func (s *playerSeeder) add(name, team string, position domain.Position, points int) *domain.Player {
	s.t.Helper()
	player := &domain.Player{
		Name:            name,
		Team:            team,
		Position:        position,
		ProjectedPoints: points,
	}
	require.NoError(s.t, s.repo.Upsert(context.Background(), player))
	require.NotZero(s.t, player.ID)
	return player
}

func (e *draftEnv) createTeam(t *testing.T, name string) *domain.Team {
	t.Helper()
	team, err := e.teams.CreateTeam(context.Background(), name, name+" owner")
	require.NoError(t, err)
	return team
}
