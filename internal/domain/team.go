package domain

import "time"

type Team struct {
	ID              int
	Name            string
	Owner           string
	BudgetRemaining int
	Roster          Roster
	CreatedAt       time.Time
}
