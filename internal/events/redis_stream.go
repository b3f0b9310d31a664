package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStreamPublisher пишет события драфта в Redis stream
type RedisStreamPublisher struct {
	client redis.Cmdable
	stream string
}

func NewRedisStreamPublisher(client redis.Cmdable, stream string) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream}
}

func (p *RedisStreamPublisher) Publish(ctx context.Context, event *domain.DraftEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode draft event: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"id":        event.ID,
			"type":      string(event.Type),
			"data":      string(data),
			"timestamp": event.OccurredAt.Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}

	return nil
}
