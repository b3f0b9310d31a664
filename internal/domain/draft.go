package domain

import "time"

type DraftAssignment struct {
	ID        int
	TeamID    int
	PlayerID  int
	Slot      RosterSlot
	Cost      int
	CreatedAt time.Time
}

// RosterEntry - назначение вместе с данными игрока, из них собирается Roster
type RosterEntry struct {
	TeamID int
	Slot   RosterSlot
	Cost   int
	Player *Player
}

// DraftResult возвращается после успешного драфта: команда с полным составом и игрок
type DraftResult struct {
	Team   *Team
	Player *Player
}

type DraftEventType string

const (
	EventPlayerDrafted   DraftEventType = "player_drafted"
	EventPlayerUndrafted DraftEventType = "player_undrafted"
)

// DraftEvent публикуется после коммита драфта или отмены драфта
type DraftEvent struct {
	ID              string         `json:"id"`
	Type            DraftEventType `json:"type"`
	TeamID          int            `json:"team_id"`
	PlayerID        int            `json:"player_id"`
	Slot            RosterSlot     `json:"roster_slot"`
	Cost            int            `json:"cost"`
	BudgetRemaining int            `json:"budget_remaining"`
	OccurredAt      time.Time      `json:"occurred_at"`
}
