package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
)

type playerRepository struct {
	executor DBExecutor
}

func NewPlayerRepository(db *sql.DB) *playerRepository {
	return &playerRepository{executor: db}
}

func NewPlayerRepositoryWithTx(tx *sql.Tx) *playerRepository {
	return &playerRepository{executor: tx}
}

const playerColumns = `p.id, p.name, p.team, p.position_code, p.bye_week,
		p.pass_attempts, p.pass_completions, p.pass_yards, p.pass_tds, p.pass_ints,
		p.rush_carries, p.rush_yards, p.rush_tds, p.rush_fumbles,
		p.rece_receptions, p.rece_yards, p.rece_tds,
		p.points_override, p.projected_points, p.value`

// Цена игрока - стоимость самого раннего назначения, если игрок задрафтован
const selectPlayers = `
	SELECT ` + playerColumns + `, d.cost
	FROM players p
	LEFT JOIN LATERAL (
		SELECT cost FROM draft_assignments
		WHERE player_id = p.id
		ORDER BY created_at, id
		LIMIT 1
	) d ON TRUE
`

func (r *playerRepository) GetByID(ctx context.Context, id int) (*domain.Player, error) {
	query := selectPlayers + ` WHERE p.id = $1`

	player, err := scanPlayer(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return player, nil
}

func (r *playerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	query := selectPlayers + ` ORDER BY p.projected_points DESC, p.id`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*domain.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

func (r *playerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (
			name, team, position_code, bye_week,
			pass_attempts, pass_completions, pass_yards, pass_tds, pass_ints,
			rush_carries, rush_yards, rush_tds, rush_fumbles,
			rece_receptions, rece_yards, rece_tds,
			points_override, projected_points
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (name, team) DO UPDATE
		SET position_code = EXCLUDED.position_code,
			bye_week = EXCLUDED.bye_week,
			pass_attempts = EXCLUDED.pass_attempts,
			pass_completions = EXCLUDED.pass_completions,
			pass_yards = EXCLUDED.pass_yards,
			pass_tds = EXCLUDED.pass_tds,
			pass_ints = EXCLUDED.pass_ints,
			rush_carries = EXCLUDED.rush_carries,
			rush_yards = EXCLUDED.rush_yards,
			rush_tds = EXCLUDED.rush_tds,
			rush_fumbles = EXCLUDED.rush_fumbles,
			rece_receptions = EXCLUDED.rece_receptions,
			rece_yards = EXCLUDED.rece_yards,
			rece_tds = EXCLUDED.rece_tds,
			points_override = EXCLUDED.points_override,
			projected_points = EXCLUDED.projected_points
		RETURNING id
	`

	var override sql.NullFloat64
	if player.PointsOverride != nil {
		override = sql.NullFloat64{Float64: *player.PointsOverride, Valid: true}
	}

	return r.executor.QueryRowContext(ctx, query,
		player.Name, player.Team, string(player.Position), player.ByeWeek,
		player.Passing.Attempts, player.Passing.Completions, player.Passing.Yards,
		player.Passing.Touchdowns, player.Passing.Interceptions,
		player.Rushing.Carries, player.Rushing.Yards, player.Rushing.Touchdowns, player.Rushing.Fumbles,
		player.Receiving.Receptions, player.Receiving.Yards, player.Receiving.Touchdowns,
		override, player.ProjectedPoints,
	).Scan(&player.ID)
}

func (r *playerRepository) SetValue(ctx context.Context, name, team string, value int) error {
	query := `UPDATE players SET value = $3 WHERE name = $1 AND team = $2`

	result, err := r.executor.ExecContext(ctx, query, name, team, value)
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

func scanPlayer(row rowScanner) (*domain.Player, error) {
	player := &domain.Player{}
	var (
		position string
		override sql.NullFloat64
		value    sql.NullInt64
		price    sql.NullInt64
	)

	err := row.Scan(
		&player.ID, &player.Name, &player.Team, &position, &player.ByeWeek,
		&player.Passing.Attempts, &player.Passing.Completions, &player.Passing.Yards,
		&player.Passing.Touchdowns, &player.Passing.Interceptions,
		&player.Rushing.Carries, &player.Rushing.Yards, &player.Rushing.Touchdowns, &player.Rushing.Fumbles,
		&player.Receiving.Receptions, &player.Receiving.Yards, &player.Receiving.Touchdowns,
		&override, &player.ProjectedPoints, &value, &price,
	)
	if err != nil {
		return nil, err
	}

	player.Position = domain.Position(position)
	if override.Valid {
		player.PointsOverride = &override.Float64
	}
	if value.Valid {
		v := int(value.Int64)
		player.Value = &v
	}
	if price.Valid {
		p := int(price.Int64)
		player.Price = &p
		player.Drafted = true
	}

	return player, nil
}
