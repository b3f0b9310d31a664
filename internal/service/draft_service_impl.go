package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
	"github.com/sirupsen/logrus"
)

type draftService struct {
	tx      repository.Transactor
	teams   TeamService
	players PlayerService
	cache   TeamCache
	events  EventPublisher
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewDraftService создает новый экземпляр DraftService
func NewDraftService(
	tx repository.Transactor,
	teams TeamService,
	players PlayerService,
	cache TeamCache,
	events EventPublisher,
	log logrus.FieldLogger,
) DraftService {
	return &draftService{
		tx:      tx,
		teams:   teams,
		players: players,
		cache:   cache,
		events:  events,
		log:     log,
		now:     time.Now,
	}
}

// DraftPlayer назначает игрока в слот команды по цене и списывает цену с бюджета.
// Все проверки и записи выполняются в одной транзакции под блокировкой строки команды.
func (s *draftService) DraftPlayer(ctx context.Context, req DraftRequest) (*domain.DraftResult, error) {
	if req.Price < 0 {
		return nil, domain.NewValidationError("price must not be negative, got %d", req.Price)
	}
	if req.Slot != domain.SlotBench && !req.Slot.Valid() {
		return nil, domain.NewValidationError("invalid roster slot %q", string(req.Slot))
	}

	var (
		assignment *domain.DraftAssignment
		remaining  int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, err := repos.Teams.GetByIDForUpdate(ctx, req.TeamID)
		if err != nil {
			return notFoundOr(err, "team", "lock team")
		}

		slot := req.Slot
		if slot == domain.SlotBench {
			current, err := repos.Drafts.ListByTeam(ctx, team.ID)
			if err != nil {
				return wrapInfra(err, "list team assignments")
			}
			if slot, err = ResolveBenchSlot(current); err != nil {
				return err
			}
		}

		if err := ensureAbsent(repos.Drafts.GetByTeamAndSlot(ctx, team.ID, slot)); err != nil {
			return replaceFound(err, domain.ErrSlotOccupied, "check slot")
		}
		if err := ensureAbsent(repos.Drafts.GetByTeamAndPlayer(ctx, team.ID, req.PlayerID)); err != nil {
			return replaceFound(err, domain.ErrPlayerOnRoster, "check roster")
		}

		if _, err := repos.Players.GetByID(ctx, req.PlayerID); err != nil {
			return notFoundOr(err, "player", "get player")
		}

		if req.Price > team.BudgetRemaining {
			return domain.ErrInsufficientBudget
		}

		assignment = &domain.DraftAssignment{
			TeamID:   team.ID,
			PlayerID: req.PlayerID,
			Slot:     slot,
			Cost:     req.Price,
		}
		if err := repos.Drafts.Create(ctx, assignment); err != nil {
			return wrapInfra(err, "create draft assignment")
		}

		remaining, err = repos.Teams.AdjustBudget(ctx, team.ID, -req.Price)
		if err != nil {
			return wrapInfra(err, "debit budget")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"team_id":          assignment.TeamID,
		"player_id":        assignment.PlayerID,
		"roster_slot":      assignment.Slot,
		"cost":             assignment.Cost,
		"budget_remaining": remaining,
	}).Info("player drafted")

	s.afterCommit(ctx, &domain.DraftEvent{
		Type:            domain.EventPlayerDrafted,
		TeamID:          assignment.TeamID,
		PlayerID:        assignment.PlayerID,
		Slot:            assignment.Slot,
		Cost:            assignment.Cost,
		BudgetRemaining: remaining,
		OccurredAt:      s.now(),
	})

	team, err := s.teams.GetTeam(ctx, assignment.TeamID)
	if err != nil {
		return nil, err
	}
	player, err := s.players.GetPlayer(ctx, assignment.PlayerID)
	if err != nil {
		return nil, err
	}

	return &domain.DraftResult{Team: team, Player: player}, nil
}

// UndraftPlayer удаляет назначение игрока в команде и возвращает его цену в бюджет
func (s *draftService) UndraftPlayer(ctx context.Context, req UndraftRequest) (bool, error) {
	var (
		assignment *domain.DraftAssignment
		remaining  int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		team, err := repos.Teams.GetByIDForUpdate(ctx, req.TeamID)
		if err != nil {
			return notFoundOr(err, "team", "lock team")
		}

		assignment, err = repos.Drafts.GetByTeamAndPlayer(ctx, team.ID, req.PlayerID)
		if err != nil {
			return notFoundOr(err, "draft assignment", "get draft assignment")
		}

		if err := repos.Drafts.Delete(ctx, assignment.ID); err != nil {
			return notFoundOr(err, "draft assignment", "delete draft assignment")
		}

		remaining, err = repos.Teams.AdjustBudget(ctx, team.ID, assignment.Cost)
		if err != nil {
			return wrapInfra(err, "refund budget")
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.WithFields(logrus.Fields{
		"team_id":          assignment.TeamID,
		"player_id":        assignment.PlayerID,
		"roster_slot":      assignment.Slot,
		"refund":           assignment.Cost,
		"budget_remaining": remaining,
	}).Info("player undrafted")

	s.afterCommit(ctx, &domain.DraftEvent{
		Type:            domain.EventPlayerUndrafted,
		TeamID:          assignment.TeamID,
		PlayerID:        assignment.PlayerID,
		Slot:            assignment.Slot,
		Cost:            assignment.Cost,
		BudgetRemaining: remaining,
		OccurredAt:      s.now(),
	})

	return true, nil
}

// afterCommit сбрасывает кэш команд и публикует событие; ошибки только логируются
func (s *draftService) afterCommit(ctx context.Context, event *domain.DraftEvent) {
	if err := s.cache.InvalidateTeams(ctx); err != nil {
		s.log.WithError(err).Warn("failed to invalidate team cache")
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.WithError(err).WithField("event_type", event.Type).Warn("failed to publish draft event")
	}
}

// ensureAbsent возвращает errFound, если запись существует, и nil, если ее нет
func ensureAbsent(_ *domain.DraftAssignment, err error) error {
	if err == nil {
		return errFound
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

var errFound = errors.New("record exists")

func replaceFound(err, conflict error, op string) error {
	if errors.Is(err, errFound) {
		return conflict
	}
	return wrapInfra(err, op)
}
