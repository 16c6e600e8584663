package api

import (
	"net/http"
	handlers "networth/src/api/handlers"
	"networth/src/config"
	"time"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/holdings", s.Handler.GetAggregatedHoldings)
		r.Get("/snapshots", s.Handler.GetSnapshots)
		r.Post("/recompute", s.Handler.Recompute)
	})

	s.Router.Post("/api/market/refresh", s.Handler.RefreshMarketData)
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		Handler:      server,
	}
	return httpServer
}
