package handler

import "github.com/bagdasarian/auction-draft/internal/domain"

func domainPlayerToHTTP(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		PlayerID:        p.ID,
		Name:            p.Name,
		Team:            p.Team,
		Position:        string(p.Position),
		ByeWeek:         p.ByeWeek,
		ProjectedPoints: p.ProjectedPoints,
		Value:           p.Value,
		Drafted:         p.Drafted,
		Price:           p.Price,
		Passing: PassingResponse{
			Attempts:      p.Passing.Attempts,
			Completions:   p.Passing.Completions,
			Yards:         p.Passing.Yards,
			Touchdowns:    p.Passing.Touchdowns,
			Interceptions: p.Passing.Interceptions,
		},
		Rushing: RushingResponse{
			Carries:    p.Rushing.Carries,
			Yards:      p.Rushing.Yards,
			Touchdowns: p.Rushing.Touchdowns,
			Fumbles:    p.Rushing.Fumbles,
		},
		Receiving: ReceivingResponse{
			Receptions: p.Receiving.Receptions,
			Yards:      p.Receiving.Yards,
			Touchdowns: p.Receiving.Touchdowns,
		},
	}
}

func optionalPlayer(p *domain.Player) *PlayerResponse {
	if p == nil {
		return nil
	}
	resp := domainPlayerToHTTP(p)
	return &resp
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	roster := team.Roster

	bench := make([]PlayerResponse, 0, len(roster.Bench))
	for _, p := range roster.Bench {
		bench = append(bench, domainPlayerToHTTP(p))
	}

	return TeamResponse{
		TeamID:          team.ID,
		Name:            team.Name,
		Owner:           team.Owner,
		BudgetRemaining: team.BudgetRemaining,
		QB:              optionalPlayer(roster.QB),
		RB1:             optionalPlayer(roster.RB1),
		RB2:             optionalPlayer(roster.RB2),
		WR1:             optionalPlayer(roster.WR1),
		WR2:             optionalPlayer(roster.WR2),
		FLEX:            optionalPlayer(roster.FLEX),
		OP:              optionalPlayer(roster.OP),
		TE:              optionalPlayer(roster.TE),
		K:               optionalPlayer(roster.K),
		DST:             optionalPlayer(roster.DST),
		Bench:           bench,
	}
}

func domainStatsToHTTP(stats *domain.DraftStats) StatsResponse {
	response := StatsResponse{
		Teams:     make([]TeamSpendStatResponse, len(stats.Teams)),
		Positions: make([]PositionStatResponse, len(stats.Positions)),
	}

	for i, stat := range stats.Teams {
		response.Teams[i] = TeamSpendStatResponse{
			TeamID:          stat.TeamID,
			TeamName:        stat.TeamName,
			Spent:           stat.Spent,
			BudgetRemaining: stat.BudgetRemaining,
			RosterSize:      stat.RosterSize,
		}
	}

	for i, stat := range stats.Positions {
		response.Positions[i] = PositionStatResponse{
			Position:  string(stat.Position),
			Drafted:   stat.Drafted,
			TotalCost: stat.TotalCost,
		}
	}

	return response
}
