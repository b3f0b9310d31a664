package ingest

// byeWeeks - неделя отдыха каждой франшизы NFL
var byeWeeks = map[string]int{
	"PIT": 5, "CHI": 5, "GB": 5, "ATL": 5,
	"HOU": 6, "MIN": 6,
	"BAL": 7, "BUF": 7,
	"JAC": 8, "LV": 8, "DET": 8, "ARI": 8, "LAR": 8, "SEA": 8,
	"CLE": 9, "NYJ": 9, "PHI": 9, "TB": 9,
	"TEN": 10, "CIN": 10, "KC": 10, "DAL": 10,
	"NO": 11, "IND": 11,
	"MIA": 12, "DEN": 12, "LAC": 12, "WAS": 12,
	"NE": 14, "NYG": 14, "CAR": 14, "SF": 14,
}

// ByeWeek возвращает неделю отдыха команды или 0, если команда неизвестна
func ByeWeek(team string) int {
	return byeWeeks[team]
}
