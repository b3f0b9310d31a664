package repository

import (
	"context"
	"errors"
)

// ErrNotFound возвращается репозиториями, когда запись отсутствует
var ErrNotFound = errors.New("record not found")

// Repositories - набор репозиториев, работающих в одной транзакции
type Repositories struct {
	Teams   TeamRepository
	Players PlayerRepository
	Drafts  DraftRepository
}

// Transactor выполняет fn в одной транзакции: ошибка fn откатывает все изменения.
// Реализация может повторить fn целиком при конфликте сериализации.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
