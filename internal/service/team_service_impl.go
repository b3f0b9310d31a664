package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
	"github.com/sirupsen/logrus"
)

type teamService struct {
	teamRepo      repository.TeamRepository
	draftRepo     repository.DraftRepository
	cache         TeamCache
	initialBudget int
	log           logrus.FieldLogger
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	draftRepo repository.DraftRepository,
	cache TeamCache,
	initialBudget int,
	log logrus.FieldLogger,
) TeamService {
	return &teamService{
		teamRepo:      teamRepo,
		draftRepo:     draftRepo,
		cache:         cache,
		initialBudget: initialBudget,
		log:           log,
	}
}

// CreateTeam создает команду с полным стартовым бюджетом и пустым составом
func (s *teamService) CreateTeam(ctx context.Context, name, owner string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	owner = strings.TrimSpace(owner)
	if name == "" {
		return nil, domain.NewValidationError("team name is required")
	}
	if owner == "" {
		return nil, domain.NewValidationError("team owner is required")
	}

	team := &domain.Team{
		Name:            name,
		Owner:           owner,
		BudgetRemaining: s.initialBudget,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, wrapInfra(err, "create team")
	}
	team.Roster = domain.BuildRoster(nil)

	if err := s.cache.InvalidateTeams(ctx); err != nil {
		s.log.WithError(err).Warn("failed to invalidate team cache")
	}

	return team, nil
}

// ListTeams возвращает все команды с составами; снимок может браться из кэша
func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, ok, err := s.cache.GetTeams(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to read team cache")
	}
	if ok {
		return teams, nil
	}

	teams, err = s.teamRepo.List(ctx)
	if err != nil {
		return nil, wrapInfra(err, "list teams")
	}

	entries, err := s.draftRepo.ListRosterEntries(ctx)
	if err != nil {
		return nil, wrapInfra(err, "list roster entries")
	}

	byTeam := make(map[int][]*domain.RosterEntry, len(teams))
	for _, entry := range entries {
		byTeam[entry.TeamID] = append(byTeam[entry.TeamID], entry)
	}
	for _, team := range teams {
		team.Roster = domain.BuildRoster(byTeam[team.ID])
	}

	if err := s.cache.SetTeams(ctx, teams); err != nil {
		s.log.WithError(err).Warn("failed to write team cache")
	}

	return teams, nil
}

// GetTeam получает команду с составом по ID
func (s *teamService) GetTeam(ctx context.Context, id int) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "team", "get team")
	}

	entries, err := s.draftRepo.ListRosterEntries(ctx, id)
	if err != nil {
		return nil, wrapInfra(err, "list roster entries")
	}
	team.Roster = domain.BuildRoster(entries)

	return team, nil
}

// notFoundOr превращает repository.ErrNotFound в доменную ошибку NOT_FOUND
func notFoundOr(err error, resource, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return wrapInfra(err, op)
}

// wrapInfra оборачивает инфраструктурные ошибки, доменные возвращает как есть
func wrapInfra(err error, op string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
