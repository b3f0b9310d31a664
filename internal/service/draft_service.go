package service

import (
	"context"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

type DraftRequest struct {
	PlayerID int
	TeamID   int
	Price    int
	// Slot - конкретный слот состава или SlotBench для автоматического выбора скамейки
	Slot domain.RosterSlot
}

type UndraftRequest struct {
	PlayerID int
	TeamID   int
}

type DraftService interface {
	DraftPlayer(ctx context.Context, req DraftRequest) (*domain.DraftResult, error)
	UndraftPlayer(ctx context.Context, req UndraftRequest) (bool, error)
}
