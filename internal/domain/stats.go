package domain

type TeamSpendStat struct {
	TeamID          int
	TeamName        string
	Spent           int
	BudgetRemaining int
	RosterSize      int
}

type PositionStat struct {
	Position  Position
	Drafted   int
	TotalCost int
}

// DraftStats - сводка по драфту для всех команд и позиций
type DraftStats struct {
	Teams     []*TeamSpendStat
	Positions []*PositionStat
}
