package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
)

type draftRepository struct {
	executor DBExecutor
}

func NewDraftRepository(db *sql.DB) *draftRepository {
	return &draftRepository{executor: db}
}

func NewDraftRepositoryWithTx(tx *sql.Tx) *draftRepository {
	return &draftRepository{executor: tx}
}

const draftColumns = `id, team_id, player_id, roster_slot, cost, created_at`

func (r *draftRepository) Create(ctx context.Context, assignment *domain.DraftAssignment) error {
	query := `
		INSERT INTO draft_assignments (team_id, player_id, roster_slot, cost, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(ctx, query,
		assignment.TeamID, assignment.PlayerID, string(assignment.Slot), assignment.Cost, time.Now(),
	).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		return translateDraftError(err)
	}

	return nil
}

// translateDraftError сопоставляет нарушения ограничений draft_assignments с доменными ошибками
func translateDraftError(err error) error {
	pgErr, ok := pgError(err)
	if !ok {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintTeamSlot:
			return domain.ErrSlotOccupied
		case constraintTeamPlayer:
			return domain.ErrPlayerOnRoster
		}
		return domain.ErrConflict
	case codeForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintDraftTeamFK:
			return domain.NewNotFoundError("team")
		case constraintDraftPlayerFK:
			return domain.NewNotFoundError("player")
		}
	case codeCheckViolation:
		return domain.NewValidationError("invalid draft assignment: %s", pgErr.ConstraintName)
	}

	return err
}

func (r *draftRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM draft_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *draftRepository) GetByTeamAndSlot(ctx context.Context, teamID int, slot domain.RosterSlot) (*domain.DraftAssignment, error) {
	query := `SELECT ` + draftColumns + ` FROM draft_assignments WHERE team_id = $1 AND roster_slot = $2`
	return r.getOne(ctx, query, teamID, string(slot))
}

func (r *draftRepository) GetByTeamAndPlayer(ctx context.Context, teamID, playerID int) (*domain.DraftAssignment, error) {
	query := `SELECT ` + draftColumns + ` FROM draft_assignments WHERE team_id = $1 AND player_id = $2`
	return r.getOne(ctx, query, teamID, playerID)
}

func (r *draftRepository) getOne(ctx context.Context, query string, args ...any) (*domain.DraftAssignment, error) {
	assignment, err := scanAssignment(r.executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (r *draftRepository) ListByTeam(ctx context.Context, teamID int) ([]*domain.DraftAssignment, error) {
	query := `SELECT ` + draftColumns + ` FROM draft_assignments WHERE team_id = $1 ORDER BY id`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.DraftAssignment, 0)
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

func (r *draftRepository) ListRosterEntries(ctx context.Context, teamIDs ...int) ([]*domain.RosterEntry, error) {
	query := `
		SELECT d.team_id, d.roster_slot, d.cost, ` + playerColumns + `, d.cost
		FROM draft_assignments d
		JOIN players p ON p.id = d.player_id
	`

	args := make([]any, 0, len(teamIDs))
	if len(teamIDs) > 0 {
		placeholders := make([]string, len(teamIDs))
		for i, id := range teamIDs {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, id)
		}
		query += ` WHERE d.team_id IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY d.team_id, d.id`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.RosterEntry, 0)
	for rows.Next() {
		entry := &domain.RosterEntry{}
		var slot string
		player, err := scanPlayer(prefixScanner{row: rows, prefix: []any{&entry.TeamID, &slot, &entry.Cost}})
		if err != nil {
			return nil, err
		}
		entry.Slot = domain.RosterSlot(slot)
		entry.Player = player
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// prefixScanner дописывает служебные колонки перед колонками игрока
type prefixScanner struct {
	row    rowScanner
	prefix []any
}

func (s prefixScanner) Scan(dest ...any) error {
	return s.row.Scan(append(s.prefix, dest...)...)
}

func scanAssignment(row rowScanner) (*domain.DraftAssignment, error) {
	assignment := &domain.DraftAssignment{}
	var slot string
	err := row.Scan(&assignment.ID, &assignment.TeamID, &assignment.PlayerID, &slot, &assignment.Cost, &assignment.CreatedAt)
	if err != nil {
		return nil, err
	}
	assignment.Slot = domain.RosterSlot(slot)
	return assignment, nil
}
