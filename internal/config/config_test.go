package config

import (
	"testing"
	"time"

	"github.com/bagdasarian/auction-draft/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, 3, cfg.Database.MaxTxRetries)
		assert.Equal(t, 200, cfg.Draft.InitialBudget)
		assert.Equal(t, scoring.DefaultRules(), cfg.Scoring.Rules())
		assert.False(t, cfg.Redis.Enabled())
		assert.Equal(t, "draft.events", cfg.Redis.Stream)
		assert.Equal(t, 4, cfg.Ingest.Workers)
	})

	t.Run("переопределение через окружение", func(t *testing.T) {
		t.Setenv("DRAFT_INITIAL_BUDGET", "250")
		t.Setenv("SCORING_RECEPTION_POINTS", "0.5")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("REDIS_CACHE_TTL", "1m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 250, cfg.Draft.InitialBudget)
		assert.Equal(t, 0.5, cfg.Scoring.Rules().ReceptionPoints)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	})

	t.Run("некорректное число", func(t *testing.T) {
		t.Setenv("DB_MAX_TX_RETRIES", "many")

		_, err := Load()

		assert.ErrorContains(t, err, "parse env")
	})

	t.Run("отрицательный бюджет", func(t *testing.T) {
		t.Setenv("DRAFT_INITIAL_BUDGET", "-1")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("нулевой делитель ярдов", func(t *testing.T) {
		t.Setenv("SCORING_PASS_YARDS_PER_POINT", "0")

		_, err := Load()

		assert.ErrorContains(t, err, "scoring rules")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "draft", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=draft sslmode=disable", cfg.DSN())
}
