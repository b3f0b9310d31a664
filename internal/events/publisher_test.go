package events

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []*domain.DraftEvent
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, event *domain.DraftEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func TestFanout_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("событие получает ID и доходит до всех", func(t *testing.T) {
		first, second := &recordingPublisher{}, &recordingPublisher{}
		event := &domain.DraftEvent{Type: domain.EventPlayerDrafted, TeamID: 1}

		require.NoError(t, NewFanout(first, second).Publish(ctx, event))

		_, err := uuid.Parse(event.ID)
		assert.NoError(t, err)
		require.Len(t, first.events, 1)
		require.Len(t, second.events, 1)
		assert.Equal(t, event.ID, second.events[0].ID)
	})

	t.Run("существующий ID сохраняется", func(t *testing.T) {
		event := &domain.DraftEvent{ID: "fixed"}

		require.NoError(t, NewFanout().Publish(ctx, event))

		assert.Equal(t, "fixed", event.ID)
	})

	t.Run("ошибка одного издателя не останавливает остальных", func(t *testing.T) {
		failing := &recordingPublisher{err: errors.New("redis down")}
		ok := &recordingPublisher{}

		err := NewFanout(failing, ok).Publish(ctx, &domain.DraftEvent{})

		assert.ErrorContains(t, err, "redis down")
		assert.Len(t, ok.events, 1)
	})
}
