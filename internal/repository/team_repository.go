package repository

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	// GetByIDForUpdate блокирует строку команды до конца транзакции
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	// AdjustBudget прибавляет delta к остатку бюджета и возвращает новый остаток
	AdjustBudget(ctx context.Context, id int, delta int) (int, error)
}
