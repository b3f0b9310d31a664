package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.DraftStats, error) {
	teams, err := s.statsRepo.GetTeamSpendStats(ctx)
	if err != nil {
		return nil, wrapInfra(err, "team spend stats")
	}

	positions, err := s.statsRepo.GetPositionStats(ctx)
	if err != nil {
		return nil, wrapInfra(err, "position stats")
	}

	return &domain.DraftStats{Teams: teams, Positions: positions}, nil
}
