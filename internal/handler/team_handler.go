package handler

import "net/http"

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name, req.Owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := TeamsResponse{Teams: make([]TeamResponse, len(teams))}
	for i, team := range teams {
		response.Teams[i] = domainTeamToHTTP(team)
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
