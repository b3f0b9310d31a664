package domain

type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
)

var Positions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST}

func (p Position) Valid() bool {
	for _, pos := range Positions {
		if p == pos {
			return true
		}
	}
	return false
}

type PassingProjection struct {
	Attempts      float64
	Completions   float64
	Yards         float64
	Touchdowns    float64
	Interceptions float64
}

type RushingProjection struct {
	Carries    float64
	Yards      float64
	Touchdowns float64
	Fumbles    float64
}

type ReceivingProjection struct {
	Receptions float64
	Yards      float64
	Touchdowns float64
}

type Player struct {
	ID        int
	Name      string
	Team      string
	Position  Position
	ByeWeek   int
	Passing   PassingProjection
	Rushing   RushingProjection
	Receiving ReceivingProjection
	// PointsOverride задается для K и DST: очки берутся из таблицы прогнозов, а не считаются по формуле
	PointsOverride  *float64
	ProjectedPoints int
	Value           *int

	// Заполняются только в списке игроков
	Drafted bool
	Price   *int
}
