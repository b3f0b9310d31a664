package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

const teamColumns = `id, name, owner, budget_remaining, created_at`

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, owner, budget_remaining, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(ctx, query, team.Name, team.Owner, team.BudgetRemaining, time.Now()).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if hasCode(err, codeCheckViolation) {
			return domain.NewValidationError("budget must not be negative")
		}
		return err
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *teamRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *teamRepository) getOne(ctx context.Context, query string, id int) (*domain.Team, error) {
	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY id`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) AdjustBudget(ctx context.Context, id int, delta int) (int, error) {
	query := `
		UPDATE teams
		SET budget_remaining = budget_remaining + $2
		WHERE id = $1
		RETURNING budget_remaining
	`

	var remaining int
	err := r.executor.QueryRowContext(ctx, query, id, delta).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		if hasCode(err, codeCheckViolation) {
			return 0, domain.ErrInsufficientBudget
		}
		return 0, err
	}

	return remaining, nil
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	err := row.Scan(&team.ID, &team.Name, &team.Owner, &team.BudgetRemaining, &team.CreatedAt)
	if err != nil {
		return nil, err
	}
	return team, nil
}
