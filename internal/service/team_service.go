package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name, owner string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	GetTeam(ctx context.Context, id int) (*domain.Team, error)
}
