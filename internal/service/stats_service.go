package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type StatsService interface {
	GetStats(ctx context.Context) (*domain.DraftStats, error)
}
