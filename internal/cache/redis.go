package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/redis/go-redis/v9"
)

const teamsKey = "draft:teams"

// NewRedisClient подключается к Redis по URL и проверяет соединение
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// TeamCache хранит JSON-снимок списка команд с составами
type TeamCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewTeamCache(client redis.Cmdable, ttl time.Duration) *TeamCache {
	return &TeamCache{client: client, ttl: ttl}
}

func (c *TeamCache) GetTeams(ctx context.Context) ([]*domain.Team, bool, error) {
	data, err := c.client.Get(ctx, teamsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var teams []*domain.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, false, fmt.Errorf("decode cached teams: %w", err)
	}

	return teams, true, nil
}

func (c *TeamCache) SetTeams(ctx context.Context, teams []*domain.Team) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("encode teams: %w", err)
	}
	return c.client.Set(ctx, teamsKey, data, c.ttl).Err()
}

func (c *TeamCache) InvalidateTeams(ctx context.Context) error {
	return c.client.Del(ctx, teamsKey).Err()
}

// NopTeamCache используется, когда Redis не настроен: всегда промах
type NopTeamCache struct{}

func (NopTeamCache) GetTeams(context.Context) ([]*domain.Team, bool, error) { return nil, false, nil }

func (NopTeamCache) SetTeams(context.Context, []*domain.Team) error { return nil }

func (NopTeamCache) InvalidateTeams(context.Context) error { return nil }
