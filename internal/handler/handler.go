package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/auction-draft/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	teamService   service.TeamService
	playerService service.PlayerService
	draftService  service.DraftService
	statsService  service.StatsService
	log           logrus.FieldLogger
}

func NewHandler(
	teamService service.TeamService,
	playerService service.PlayerService,
	draftService service.DraftService,
	statsService service.StatsService,
	log logrus.FieldLogger,
) *Handler {
	return &Handler{
		teamService:   teamService,
		playerService: playerService,
		draftService:  draftService,
		statsService:  statsService,
		log:           log,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
