package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectionPage собирает страницу в разметке сайта прогнозов
func projectionPage(rows ...string) string {
	return `<html><body>
<table id="other"><tbody><tr><td>ignored</td></tr></tbody></table>
<table id="data">
<thead><tr><th>Player</th></tr></thead>
<tbody>` + strings.Join(rows, "\n") + `</tbody>
</table></body></html>`
}

func playerRow(name, team string, values ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<tr><td class="player-label"><a href="/nfl/players/x.php">%s</a> %s <a class="fp-player-link"></a></td>`, name, team)
	for _, v := range values {
		fmt.Fprintf(&b, "<td>%s</td>", v)
	}
	b.WriteString("</tr>")
	return b.String()
}

func TestParseProjections(t *testing.T) {
	t.Run("квотербек с разделителями тысяч", func(t *testing.T) {
		html := projectionPage(
			playerRow("Josh Allen", "BUF", "560.3", "367.1", "4,105.2", "28.4", "11.9", "104.0", "555.7", "9.8", "3.1", "382.5"),
		)

		players, err := ParseProjections(domain.PositionQB, strings.NewReader(html))

		require.NoError(t, err)
		require.Len(t, players, 1)
		p := players[0]
		assert.Equal(t, "Josh Allen", p.Name)
		assert.Equal(t, "BUF", p.Team)
		assert.Equal(t, domain.PositionQB, p.Position)
		assert.Equal(t, 7, p.ByeWeek)
		assert.InDelta(t, 4105.2, p.Passing.Yards, 0.001)
		assert.InDelta(t, 28.4, p.Passing.Touchdowns, 0.001)
		assert.InDelta(t, 11.9, p.Passing.Interceptions, 0.001)
		assert.InDelta(t, 555.7, p.Rushing.Yards, 0.001)
		assert.InDelta(t, 3.1, p.Rushing.Fumbles, 0.001)
		assert.Nil(t, p.PointsOverride)
		assert.Zero(t, p.ProjectedPoints)
	})

	t.Run("раннинбек и ресивер используют разные колонки", func(t *testing.T) {
		rb, err := ParseProjections(domain.PositionRB, strings.NewReader(projectionPage(
			playerRow("Bijan Robinson", "ATL", "280", "1,300", "10", "60", "480", "3", "1.5"),
		)))
		require.NoError(t, err)
		require.Len(t, rb, 1)
		assert.InDelta(t, 280, rb[0].Rushing.Carries, 0.001)
		assert.InDelta(t, 1300, rb[0].Rushing.Yards, 0.001)
		assert.InDelta(t, 60, rb[0].Receiving.Receptions, 0.001)
		assert.InDelta(t, 480, rb[0].Receiving.Yards, 0.001)
		assert.InDelta(t, 1.5, rb[0].Rushing.Fumbles, 0.001)

		wr, err := ParseProjections(domain.PositionWR, strings.NewReader(projectionPage(
			playerRow("CeeDee Lamb", "DAL", "110", "1,500", "11", "12", "80", "1", "0.5"),
		)))
		require.NoError(t, err)
		require.Len(t, wr, 1)
		assert.InDelta(t, 110, wr[0].Receiving.Receptions, 0.001)
		assert.InDelta(t, 1500, wr[0].Receiving.Yards, 0.001)
		assert.InDelta(t, 12, wr[0].Rushing.Carries, 0.001)
		assert.InDelta(t, 80, wr[0].Rushing.Yards, 0.001)
		assert.Equal(t, 10, wr[0].ByeWeek)
	})

	t.Run("тайт-энд", func(t *testing.T) {
		players, err := ParseProjections(domain.PositionTE, strings.NewReader(projectionPage(
			playerRow("Sam LaPorta", "DET", "85", "900", "8", "0.4", "170"),
		)))

		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.InDelta(t, 85, players[0].Receiving.Receptions, 0.001)
		assert.InDelta(t, 0.4, players[0].Rushing.Fumbles, 0.001)
		assert.Zero(t, players[0].Rushing.Yards)
	})

	t.Run("кикер берет очки из пятой колонки", func(t *testing.T) {
		players, err := ParseProjections(domain.PositionK, strings.NewReader(projectionPage(
			playerRow("Harrison Butker", "KC", "30", "33", "40", "142.6"),
		)))

		require.NoError(t, err)
		require.Len(t, players, 1)
		require.NotNil(t, players[0].PointsOverride)
		assert.InDelta(t, 142.6, *players[0].PointsOverride, 0.001)
	})

	t.Run("защита сопоставляется с аббревиатурой", func(t *testing.T) {
		row := `<tr><td><a href="/nfl/teams/x.php">Jacksonville Jaguars</a></td>` +
			`<td>40</td><td>12</td><td>8</td><td>1</td><td>1</td><td>2</td><td>300</td><td>5,400</td><td>118.4</td></tr>`

		players, err := ParseProjections(domain.PositionDST, strings.NewReader(projectionPage(row)))

		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "Jacksonville Jaguars", players[0].Name)
		assert.Equal(t, "JAC", players[0].Team)
		assert.Equal(t, 8, players[0].ByeWeek)
		require.NotNil(t, players[0].PointsOverride)
		assert.InDelta(t, 118.4, *players[0].PointsOverride, 0.001)
	})

	t.Run("неизвестная защита - ошибка", func(t *testing.T) {
		row := `<tr><td><a>Springfield Atoms</a></td>` + strings.Repeat("<td>1</td>", 9) + `</tr>`

		_, err := ParseProjections(domain.PositionDST, strings.NewReader(projectionPage(row)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Springfield Atoms")
	})

	t.Run("нечисловая ячейка - ошибка", func(t *testing.T) {
		_, err := ParseProjections(domain.PositionTE, strings.NewReader(projectionPage(
			playerRow("Sam LaPorta", "DET", "85", "n/a", "8", "0.4"),
		)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("не хватает колонок", func(t *testing.T) {
		_, err := ParseProjections(domain.PositionK, strings.NewReader(projectionPage(
			playerRow("Harrison Butker", "KC", "30"),
		)))

		require.Error(t, err)
	})

	t.Run("несколько строк сохраняют порядок", func(t *testing.T) {
		players, err := ParseProjections(domain.PositionK, strings.NewReader(projectionPage(
			playerRow("Harrison Butker", "KC", "30", "33", "40", "142"),
			playerRow("Justin Tucker", "BAL", "28", "31", "42", "138"),
		)))

		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, "Harrison Butker", players[0].Name)
		assert.Equal(t, "Justin Tucker", players[1].Name)
		assert.Equal(t, "BAL", players[1].Team)
	})

	t.Run("пустая таблица", func(t *testing.T) {
		players, err := ParseProjections(domain.PositionQB, strings.NewReader(projectionPage()))

		require.NoError(t, err)
		assert.Empty(t, players)
	})
}

func TestProjectionURL(t *testing.T) {
	url, err := ProjectionURL("https://example.com/nfl/projections/", domain.PositionDST)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/nfl/projections/dst.php?week=draft", url)

	_, err = ProjectionURL("https://example.com", domain.Position("LB"))
	assert.Error(t, err)
}

func TestByeWeek(t *testing.T) {
	assert.Equal(t, 5, ByeWeek("PIT"))
	assert.Equal(t, 14, ByeWeek("SF"))
	assert.Equal(t, 0, ByeWeek("XYZ"))
	assert.Len(t, byeWeeks, 32)
	assert.Len(t, defenseTeams, 32)
}
