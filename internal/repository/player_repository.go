package repository

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type PlayerRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Player, error)
	// List возвращает игроков по убыванию прогноза очков вместе с признаком драфта
	List(ctx context.Context) ([]*domain.Player, error)
	// Upsert создает или обновляет игрока по паре (name, team)
	Upsert(ctx context.Context, player *domain.Player) error
	SetValue(ctx context.Context, name, team string, value int) error
}
