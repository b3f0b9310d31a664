package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PassingResponse struct {
	Attempts      float64 `json:"attempts"`
	Completions   float64 `json:"completions"`
	Yards         float64 `json:"yards"`
	Touchdowns    float64 `json:"touchdowns"`
	Interceptions float64 `json:"interceptions"`
}

type RushingResponse struct {
	Carries    float64 `json:"carries"`
	Yards      float64 `json:"yards"`
	Touchdowns float64 `json:"touchdowns"`
	Fumbles    float64 `json:"fumbles"`
}

type ReceivingResponse struct {
	Receptions float64 `json:"receptions"`
	Yards      float64 `json:"yards"`
	Touchdowns float64 `json:"touchdowns"`
}

type PlayerResponse struct {
	PlayerID        int               `json:"player_id"`
	Name            string            `json:"name"`
	Team            string            `json:"team"`
	Position        string            `json:"position"`
	ByeWeek         int               `json:"bye_week"`
	ProjectedPoints int               `json:"projected_points"`
	Value           *int              `json:"value"`
	Drafted         bool              `json:"drafted"`
	Price           *int              `json:"price"`
	Passing         PassingResponse   `json:"passing"`
	Rushing         RushingResponse   `json:"rushing"`
	Receiving       ReceivingResponse `json:"receiving"`
}

type PlayersResponse struct {
	Players []PlayerResponse `json:"players"`
	Count   int              `json:"count"`
}

type CreateTeamRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// TeamResponse - команда с именованными слотами состава; пустой слот отдается как null
type TeamResponse struct {
	TeamID          int              `json:"team_id"`
	Name            string           `json:"name"`
	Owner           string           `json:"owner"`
	BudgetRemaining int              `json:"budget_remaining"`
	QB              *PlayerResponse  `json:"qb"`
	RB1             *PlayerResponse  `json:"rb1"`
	RB2             *PlayerResponse  `json:"rb2"`
	WR1             *PlayerResponse  `json:"wr1"`
	WR2             *PlayerResponse  `json:"wr2"`
	FLEX            *PlayerResponse  `json:"flex"`
	OP              *PlayerResponse  `json:"op"`
	TE              *PlayerResponse  `json:"te"`
	K               *PlayerResponse  `json:"k"`
	DST             *PlayerResponse  `json:"dst"`
	Bench           []PlayerResponse `json:"bench"`
}

type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type DraftRequest struct {
	PlayerID   int    `json:"player_id"`
	TeamID     int    `json:"team_id"`
	Price      *int   `json:"price"`
	RosterSlot string `json:"roster_slot"`
}

type DraftResponse struct {
	Team   TeamResponse   `json:"team"`
	Player PlayerResponse `json:"player"`
}

type UndraftRequest struct {
	PlayerID int `json:"player_id"`
	TeamID   int `json:"team_id"`
}

type UndraftResponse struct {
	Success bool `json:"success"`
}

type TeamSpendStatResponse struct {
	TeamID          int    `json:"team_id"`
	TeamName        string `json:"team_name"`
	Spent           int    `json:"spent"`
	BudgetRemaining int    `json:"budget_remaining"`
	RosterSize      int    `json:"roster_size"`
}

type PositionStatResponse struct {
	Position  string `json:"position"`
	Drafted   int    `json:"drafted"`
	TotalCost int    `json:"total_cost"`
}

type StatsResponse struct {
	Teams     []TeamSpendStatResponse `json:"teams"`
	Positions []PositionStatResponse  `json:"positions"`
}
