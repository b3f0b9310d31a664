package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE коды PostgreSQL
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const (
	constraintTeamSlot      = "draft_assignments_team_slot_key"
	constraintTeamPlayer    = "draft_assignments_team_player_key"
	constraintDraftTeamFK   = "draft_assignments_team_id_fkey"
	constraintDraftPlayerFK = "draft_assignments_player_id_fkey"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == code
}

// isRetryable сообщает, можно ли повторить транзакцию целиком
func isRetryable(err error) bool {
	return hasCode(err, codeSerializationFailure) || hasCode(err, codeDeadlockDetected)
}
