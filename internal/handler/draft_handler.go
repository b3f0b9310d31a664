package handler

import (
	"net/http"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/service"
)

func (h *Handler) DraftPlayer(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.PlayerID <= 0 || req.TeamID <= 0 {
		h.handleError(w, r, domain.NewValidationError("player_id and team_id are required"))
		return
	}
	if req.Price == nil {
		h.handleError(w, r, domain.NewValidationError("price is required"))
		return
	}

	slot, err := domain.ParseRosterSlot(req.RosterSlot)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.draftService.DraftPlayer(r.Context(), service.DraftRequest{
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Price:    *req.Price,
		Slot:     slot,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, DraftResponse{
		Team:   domainTeamToHTTP(result.Team),
		Player: domainPlayerToHTTP(result.Player),
	})
}

func (h *Handler) UndraftPlayer(w http.ResponseWriter, r *http.Request) {
	var req UndraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.PlayerID <= 0 || req.TeamID <= 0 {
		h.handleError(w, r, domain.NewValidationError("player_id and team_id are required"))
		return
	}

	ok, err := h.draftService.UndraftPlayer(r.Context(), service.UndraftRequest{
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, UndraftResponse{Success: ok})
}
