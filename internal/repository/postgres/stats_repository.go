package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetTeamSpendStats(ctx context.Context) ([]*domain.TeamSpendStat, error) {
	query := `
		SELECT t.id, t.name, COALESCE(SUM(d.cost), 0) AS spent, t.budget_remaining, COUNT(d.id) AS roster_size
		FROM teams t
		LEFT JOIN draft_assignments d ON t.id = d.team_id
		GROUP BY t.id, t.name, t.budget_remaining
		ORDER BY spent DESC, t.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.TeamSpendStat, 0)
	for rows.Next() {
		stat := &domain.TeamSpendStat{}
		err := rows.Scan(&stat.TeamID, &stat.TeamName, &stat.Spent, &stat.BudgetRemaining, &stat.RosterSize)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetPositionStats(ctx context.Context) ([]*domain.PositionStat, error) {
	query := `
		SELECT p.position_code, COUNT(d.id) AS drafted, COALESCE(SUM(d.cost), 0) AS total_cost
		FROM draft_assignments d
		JOIN players p ON p.id = d.player_id
		GROUP BY p.position_code
		ORDER BY p.position_code
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.PositionStat, 0)
	for rows.Next() {
		stat := &domain.PositionStat{}
		var position string
		if err := rows.Scan(&position, &stat.Drafted, &stat.TotalCost); err != nil {
			return nil, err
		}
		stat.Position = domain.Position(position)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
