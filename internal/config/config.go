package config

import (
	"fmt"
	"time"

	"github.com/bagdasarian/auction-draft/internal/scoring"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Draft    DraftConfig
	Scoring  ScoringConfig
	Log      LogConfig
	Ingest   IngestConfig
}

type ServerConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type DatabaseConfig struct {
	Host         string `env:"DB_HOST" envDefault:"localhost"`
	Port         string `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER" envDefault:"draft"`
	Password     string `env:"DB_PASSWORD" envDefault:"draft"`
	DBName       string `env:"DB_NAME" envDefault:"auction_draft"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxTxRetries int    `env:"DB_MAX_TX_RETRIES" envDefault:"3"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// RedisConfig - пустой URL отключает кэш и поток событий
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"30s"`
	Stream   string        `env:"REDIS_STREAM" envDefault:"draft.events"`
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

type DraftConfig struct {
	InitialBudget int `env:"DRAFT_INITIAL_BUDGET" envDefault:"200"`
}

type ScoringConfig struct {
	PassYardsPerPoint    float64 `env:"SCORING_PASS_YARDS_PER_POINT" envDefault:"20"`
	RushRecYardsPerPoint float64 `env:"SCORING_RUSH_REC_YARDS_PER_POINT" envDefault:"10"`
	TouchdownPoints      float64 `env:"SCORING_TD_POINTS" envDefault:"6"`
	TurnoverPoints       float64 `env:"SCORING_TURNOVER_POINTS" envDefault:"-2"`
	ReceptionPoints      float64 `env:"SCORING_RECEPTION_POINTS" envDefault:"1"`
}

func (c ScoringConfig) Rules() scoring.Rules {
	return scoring.Rules{
		PassYardsPerPoint:    c.PassYardsPerPoint,
		RushRecYardsPerPoint: c.RushRecYardsPerPoint,
		TouchdownPoints:      c.TouchdownPoints,
		TurnoverPoints:       c.TurnoverPoints,
		ReceptionPoints:      c.ReceptionPoints,
	}
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type IngestConfig struct {
	BaseURL        string `env:"INGEST_BASE_URL" envDefault:"https://www.fantasypros.com/nfl/projections"`
	CheatsheetPath string `env:"INGEST_CHEATSHEET" envDefault:"data/cheatsheet.csv"`
	TeamsPath      string `env:"INGEST_TEAMS" envDefault:"data/teams.csv"`
	Workers        int    `env:"INGEST_WORKERS" envDefault:"4"`
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Draft.InitialBudget < 0 {
		return nil, fmt.Errorf("DRAFT_INITIAL_BUDGET must not be negative, got %d", cfg.Draft.InitialBudget)
	}
	if err := cfg.Scoring.Rules().Validate(); err != nil {
		return nil, fmt.Errorf("scoring rules: %w", err)
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
