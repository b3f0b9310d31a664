package handler

import "net/http"

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := PlayersResponse{
		Players: make([]PlayerResponse, len(players)),
		Count:   len(players),
	}
	for i, p := range players {
		response.Players[i] = domainPlayerToHTTP(p)
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathID(r, "playerID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, domainPlayerToHTTP(player))
}
