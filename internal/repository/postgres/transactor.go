package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/auction-draft/internal/repository"
	"github.com/sirupsen/logrus"
)

// TxManager выполняет функцию в транзакции READ COMMITTED и повторяет ее
// при конфликте сериализации или дедлоке.
type TxManager struct {
	db         *sql.DB
	maxRetries int
	log        logrus.FieldLogger
}

func NewTxManager(db *sql.DB, maxRetries int, log logrus.FieldLogger) *TxManager {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &TxManager{db: db, maxRetries: maxRetries, log: log}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		m.log.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"error":   err,
		}).Warn("transaction conflict, retrying")
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Teams:   NewTeamRepositoryWithTx(tx),
		Players: NewPlayerRepositoryWithTx(tx),
		Drafts:  NewDraftRepositoryWithTx(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
