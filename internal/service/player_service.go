package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type PlayerService interface {
	ListPlayers(ctx context.Context) ([]*domain.Player, error)
	GetPlayer(ctx context.Context, id int) (*domain.Player, error)
}
