// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	service "github.com/okian/playerdata/internal/app"
	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/internal/domain/model"
	"github.com/okian/playerdata/pkg/logger"
)

const defaultRequestTimeout = 30 * time.Second

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatsProvider

	Convert(ctx context.Context, format convert.Format, data []byte) (convert.Result, error)
	IngestFeed(ctx context.Context, player model.Player, format convert.Format, data []byte) (service.FeedReport, error)
	IngestHighscore(ctx context.Context, player model.Player, format convert.Format, data []byte) (service.HighscoreReport, error)

	Feed(ctx context.Context, player model.Player) (feed.Feed, error)
	LatestHighscore(ctx context.Context, player model.Player) (*highscore.Snapshot, error)
	HighscoreHistory(ctx context.Context, player model.Player) ([]*highscore.Snapshot, error)

	// MaxInputBytes bounds request bodies.
	MaxInputBytes() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps           Dependencies
	logger         logger.Logger
	requestTimeout time.Duration

	healthHandler *HealthHandler
	statsHandler  *StatsHandler
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used for request failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequestTimeout bounds the time a handler may run.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:           deps,
		logger:         logger.Nop(),
		requestTimeout: defaultRequestTimeout,
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(r chi.Router) {
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	r.Get("/healthz", s.healthHandler.HandleHealth)
	r.Handle("/metrics", s.healthHandler.MetricsHandler())
	r.Get("/stats", s.statsHandler.HandleStats)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(s.requestTimeout))

		r.Post("/convert/{format}", s.handleConvert)

		r.Route("/players/{player}", func(r chi.Router) {
			r.Post("/feed", s.handleIngestFeed)
			r.Get("/feed", s.handleGetFeed)
			r.Post("/highscore", s.handleIngestHighscore)
			r.Get("/highscore", s.handleGetHighscore)
			r.Get("/highscore/history", s.handleGetHighscoreHistory)
		})
	})
}

// Handler returns a router with every route registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}
