package repository

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type DraftRepository interface {
	Create(ctx context.Context, assignment *domain.DraftAssignment) error
	Delete(ctx context.Context, id int) error
	GetByTeamAndSlot(ctx context.Context, teamID int, slot domain.RosterSlot) (*domain.DraftAssignment, error)
	GetByTeamAndPlayer(ctx context.Context, teamID, playerID int) (*domain.DraftAssignment, error)
	ListByTeam(ctx context.Context, teamID int) ([]*domain.DraftAssignment, error)
	// ListRosterEntries возвращает назначения с игроками; без teamIDs - для всех команд
	ListRosterEntries(ctx context.Context, teamIDs ...int) ([]*domain.RosterEntry, error)
}
