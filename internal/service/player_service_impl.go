package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
)

type playerService struct {
	playerRepo repository.PlayerRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

// ListPlayers возвращает игроков по убыванию прогноза очков
func (s *playerService) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, wrapInfra(err, "list players")
	}
	return players, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "player", "get player")
	}
	return player, nil
}
