package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) AdjustBudget(ctx context.Context, id int, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id int) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) SetValue(ctx context.Context, name, team string, value int) error {
	args := m.Called(ctx, name, team, value)
	return args.Error(0)
}

type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) Create(ctx context.Context, assignment *domain.DraftAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockDraftRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDraftRepository) GetByTeamAndSlot(ctx context.Context, teamID int, slot domain.RosterSlot) (*domain.DraftAssignment, error) {
	args := m.Called(ctx, teamID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftAssignment), args.Error(1)
}

func (m *MockDraftRepository) GetByTeamAndPlayer(ctx context.Context, teamID, playerID int) (*domain.DraftAssignment, error) {
	args := m.Called(ctx, teamID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftAssignment), args.Error(1)
}

func (m *MockDraftRepository) ListByTeam(ctx context.Context, teamID int) ([]*domain.DraftAssignment, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DraftAssignment), args.Error(1)
}

func (m *MockDraftRepository) ListRosterEntries(ctx context.Context, teamIDs ...int) ([]*domain.RosterEntry, error) {
	args := m.Called(ctx, teamIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RosterEntry), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetTeamSpendStats(ctx context.Context) ([]*domain.TeamSpendStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamSpendStat), args.Error(1)
}

func (m *MockStatsRepository) GetPositionStats(ctx context.Context) ([]*domain.PositionStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PositionStat), args.Error(1)
}

// MockTransactor вызывает fn с репозиториями Repos и отдает ошибку fn наружу
type MockTransactor struct {
	mock.Mock
	Repos repository.Repositories
}

func (m *MockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.Repos)
}

type MockTeamCache struct {
	mock.Mock
}

func (m *MockTeamCache) GetTeams(ctx context.Context) ([]*domain.Team, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Team), args.Bool(1), args.Error(2)
}

func (m *MockTeamCache) SetTeams(ctx context.Context, teams []*domain.Team) error {
	args := m.Called(ctx, teams)
	return args.Error(0)
}

func (m *MockTeamCache) InvalidateTeams(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *domain.DraftEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
