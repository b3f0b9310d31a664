package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

// TeamCache хранит снимок списка команд. Промах возвращает ok == false.
type TeamCache interface {
	GetTeams(ctx context.Context) (teams []*domain.Team, ok bool, err error)
	SetTeams(ctx context.Context, teams []*domain.Team) error
	InvalidateTeams(ctx context.Context) error
}

// EventPublisher доставляет события драфта после коммита
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.DraftEvent) error
}
