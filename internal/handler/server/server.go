package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/auction-draft/internal/handler"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Server struct {
	server *http.Server
	log    logrus.FieldLogger
}

func NewServer(h *handler.Handler, live http.Handler, addr string, log logrus.FieldLogger) *Server {
	router := mux.NewRouter()
	SetupRoutes(router, h, live, log)

	return &Server{
		log: log,
		server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Info("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
