package server

import (
	"net/http"

	"github.com/bagdasarian/auction-draft/internal/handler"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(router *mux.Router, h *handler.Handler, live http.Handler, log logrus.FieldLogger) {
	router.Use(handler.RecoveryMiddleware(log))
	router.Use(handler.RequestIDMiddleware)
	router.Use(handler.LoggingMiddleware(log))

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	router.HandleFunc("/players", h.ListPlayers).Methods("GET")
	router.HandleFunc("/players/{playerID}", h.GetPlayer).Methods("GET")

	router.HandleFunc("/teams", h.ListTeams).Methods("GET")
	router.HandleFunc("/teams", h.CreateTeam).Methods("POST")
	router.HandleFunc("/teams/{teamID}", h.GetTeam).Methods("GET")

	router.HandleFunc("/draft", h.DraftPlayer).Methods("POST")
	router.HandleFunc("/draft/undraft", h.UndraftPlayer).Methods("POST")

	router.HandleFunc("/stats", h.GetStats).Methods("GET")

	router.Handle("/ws/draft", live).Methods("GET")
}
