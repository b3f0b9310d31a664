package handler

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, name, owner string) (*domain.Team, error) {
	args := m.Called(ctx, name, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamService) GetTeam(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) DraftPlayer(ctx context.Context, req service.DraftRequest) (*domain.DraftResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftResult), args.Error(1)
}

func (m *MockDraftService) UndraftPlayer(ctx context.Context, req service.UndraftRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*domain.DraftStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftStats), args.Error(1)
}
