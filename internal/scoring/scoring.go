// Package scoring считает прогноз фэнтези-очков игрока по его статистическим прогнозам.
package scoring

import (
	"errors"
	"math"

	"github.com/bagdasarian/auction-draft/internal/domain"
)

// Rules - стоимость статистических категорий в очках. Лига может переопределить любое значение.
type Rules struct {
	PassYardsPerPoint    float64
	RushRecYardsPerPoint float64
	TouchdownPoints      float64
	TurnoverPoints       float64
	ReceptionPoints      float64
}

// DefaultRules - стандартная PPR-разбивка
func DefaultRules() Rules {
	return Rules{
		PassYardsPerPoint:    20,
		RushRecYardsPerPoint: 10,
		TouchdownPoints:      6,
		TurnoverPoints:       -2,
		ReceptionPoints:      1,
	}
}

func (r Rules) Validate() error {
	if r.PassYardsPerPoint <= 0 {
		return errors.New("pass yards per point must be positive")
	}
	if r.RushRecYardsPerPoint <= 0 {
		return errors.New("rush/receiving yards per point must be positive")
	}
	return nil
}

// Points считает очки по формуле без округления.
func (r Rules) Points(p *domain.Player) float64 {
	return p.Passing.Yards/r.PassYardsPerPoint +
		p.Passing.Touchdowns*r.TouchdownPoints +
		p.Passing.Interceptions*r.TurnoverPoints +
		p.Rushing.Yards/r.RushRecYardsPerPoint +
		p.Rushing.Touchdowns*r.TouchdownPoints +
		p.Rushing.Fumbles*r.TurnoverPoints +
		p.Receiving.Yards/r.RushRecYardsPerPoint +
		p.Receiving.Receptions*r.ReceptionPoints
}

// ProjectedPoints возвращает округленный прогноз очков.
// Для K и DST используется PointsOverride из таблицы прогнозов.
func (r Rules) ProjectedPoints(p *domain.Player) int {
	if p.PointsOverride != nil {
		return roundHalfUp(*p.PointsOverride)
	}
	return roundHalfUp(r.Points(p))
}

// Apply записывает ProjectedPoints в игрока.
func (r Rules) Apply(p *domain.Player) {
	p.ProjectedPoints = r.ProjectedPoints(p)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
