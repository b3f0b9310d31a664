package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bagdasarian/auction-draft/internal/domain"
)

const projectionRowsSelector = `table[id="data"] tbody tr`

// projectionPages - путь страницы прогнозов относительно базового URL
var projectionPages = map[domain.Position]string{
	domain.PositionQB:  "qb.php?week=draft",
	domain.PositionRB:  "rb.php?week=draft",
	domain.PositionWR:  "wr.php?week=draft",
	domain.PositionTE:  "te.php?week=draft",
	domain.PositionK:   "k.php?week=draft",
	domain.PositionDST: "dst.php?week=draft",
}

// ProjectionURL собирает адрес страницы прогнозов для позиции
func ProjectionURL(baseURL string, position domain.Position) (string, error) {
	page, ok := projectionPages[position]
	if !ok {
		return "", fmt.Errorf("no projection page for position %q", position)
	}
	return strings.TrimRight(baseURL, "/") + "/" + page, nil
}

// rowParser заполняет прогнозы игрока из ячеек строки; cells[0] - имя и команда
type rowParser func(p *domain.Player, cells []string) error

var rowParsers = map[domain.Position]rowParser{
	domain.PositionQB:  parseQBRow,
	domain.PositionRB:  parseRBRow,
	domain.PositionWR:  parseWRRow,
	domain.PositionTE:  parseTERow,
	domain.PositionK:   parseKRow,
	domain.PositionDST: parseDSTRow,
}

// ParseProjections разбирает таблицу прогнозов одной позиции.
// ProjectedPoints не заполняется, его считает scoring.
func ParseProjections(position domain.Position, r io.Reader) ([]*domain.Player, error) {
	parse, ok := rowParsers[position]
	if !ok {
		return nil, fmt.Errorf("no projection parser for position %q", position)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var (
		players  []*domain.Player
		parseErr error
	)
	doc.Find(projectionRowsSelector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cols := row.Find("td")
		if cols.Length() == 0 {
			return true
		}

		cells := make([]string, cols.Length())
		cols.Each(func(j int, td *goquery.Selection) {
			cells[j] = strings.TrimSpace(td.Text())
		})

		player := &domain.Player{
			Name:     strings.TrimSpace(cols.First().Find("a").First().Text()),
			Position: position,
		}
		if position != domain.PositionDST {
			player.Team = lastField(cells[0])
		}

		if err := parse(player, cells); err != nil {
			parseErr = fmt.Errorf("%s row %d: %w", position, i+1, err)
			return false
		}
		if player.Name == "" || player.Team == "" {
			parseErr = fmt.Errorf("%s row %d: missing player name or team", position, i+1)
			return false
		}

		player.ByeWeek = ByeWeek(player.Team)
		players = append(players, player)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return players, nil
}

func parseQBRow(p *domain.Player, cells []string) error {
	n := numbers(cells)
	p.Passing = domain.PassingProjection{
		Attempts:      n.at(1),
		Completions:   n.at(2),
		Yards:         n.at(3),
		Touchdowns:    n.at(4),
		Interceptions: n.at(5),
	}
	p.Rushing = domain.RushingProjection{
		Carries:    n.at(6),
		Yards:      n.at(7),
		Touchdowns: n.at(8),
		Fumbles:    n.at(9),
	}
	return n.err
}

func parseRBRow(p *domain.Player, cells []string) error {
	n := numbers(cells)
	p.Rushing = domain.RushingProjection{
		Carries:    n.at(1),
		Yards:      n.at(2),
		Touchdowns: n.at(3),
		Fumbles:    n.at(7),
	}
	p.Receiving = domain.ReceivingProjection{
		Receptions: n.at(4),
		Yards:      n.at(5),
		Touchdowns: n.at(6),
	}
	return n.err
}

func parseWRRow(p *domain.Player, cells []string) error {
	n := numbers(cells)
	p.Receiving = domain.ReceivingProjection{
		Receptions: n.at(1),
		Yards:      n.at(2),
		Touchdowns: n.at(3),
	}
	p.Rushing = domain.RushingProjection{
		Carries:    n.at(4),
		Yards:      n.at(5),
		Touchdowns: n.at(6),
		Fumbles:    n.at(7),
	}
	return n.err
}

func parseTERow(p *domain.Player, cells []string) error {
	n := numbers(cells)
	p.Receiving = domain.ReceivingProjection{
		Receptions: n.at(1),
		Yards:      n.at(2),
		Touchdowns: n.at(3),
	}
	p.Rushing = domain.RushingProjection{Fumbles: n.at(4)}
	return n.err
}

func parseKRow(p *domain.Player, cells []string) error {
	n := numbers(cells)
	points := n.at(4)
	p.PointsOverride = &points
	return n.err
}

func parseDSTRow(p *domain.Player, cells []string) error {
	team, ok := defenseTeams[p.Name]
	if !ok {
		return fmt.Errorf("unknown defense %q", p.Name)
	}
	p.Team = team

	n := numbers(cells)
	points := n.at(9)
	p.PointsOverride = &points
	return n.err
}

// cellNumbers читает числовые ячейки строки и запоминает первую ошибку
type cellNumbers struct {
	cells []string
	err   error
}

func numbers(cells []string) *cellNumbers {
	return &cellNumbers{cells: cells}
}

func (n *cellNumbers) at(i int) float64 {
	if n.err != nil {
		return 0
	}
	if i >= len(n.cells) {
		n.err = fmt.Errorf("column %d missing", i)
		return 0
	}

	v, err := parseNumber(n.cells[i])
	if err != nil {
		n.err = fmt.Errorf("column %d: %w", i, err)
		return 0
	}
	return v
}

// parseNumber понимает разделители тысяч; пустая ячейка считается нулем
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func lastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

var defenseTeams = map[string]string{
	"Arizona Cardinals":     "ARI",
	"Atlanta Falcons":       "ATL",
	"Baltimore Ravens":      "BAL",
	"Buffalo Bills":         "BUF",
	"Carolina Panthers":     "CAR",
	"Chicago Bears":         "CHI",
	"Cincinnati Bengals":    "CIN",
	"Cleveland Browns":      "CLE",
	"Dallas Cowboys":        "DAL",
	"Denver Broncos":        "DEN",
	"Detroit Lions":         "DET",
	"Green Bay Packers":     "GB",
	"Houston Texans":        "HOU",
	"Indianapolis Colts":    "IND",
	"Jacksonville Jaguars":  "JAC",
	"Kansas City Chiefs":    "KC",
	"Las Vegas Raiders":     "LV",
	"Los Angeles Chargers":  "LAC",
	"Los Angeles Rams":      "LAR",
	"Miami Dolphins":        "MIA",
	"Minnesota Vikings":     "MIN",
	"New England Patriots":  "NE",
	"New Orleans Saints":    "NO",
	"New York Giants":       "NYG",
	"New York Jets":         "NYJ",
	"Philadelphia Eagles":   "PHI",
	"Pittsburgh Steelers":   "PIT",
	"San Francisco 49ers":   "SF",
	"Seattle Seahawks":      "SEA",
	"Tampa Bay Buccaneers":  "TB",
	"Tennessee Titans":      "TEN",
	"Washington Commanders": "WAS",
}
