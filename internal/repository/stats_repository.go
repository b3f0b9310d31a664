package repository

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type StatsRepository interface {
	GetTeamSpendStats(ctx context.Context) ([]*domain.TeamSpendStat, error)
	GetPositionStats(ctx context.Context) ([]*domain.PositionStat, error)
}
