// Package api serves the grade dashboard over a JSON HTTP API.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-kit/log"

	"github.com/ukane-philemon/gradeboard/internal/logger"
	"github.com/ukane-philemon/gradeboard/internal/pagestate"
)

// Config holds the optional behavior of a Server.
type Config struct {
	// Latency delays every request.
	Latency time.Duration
	// RateLimit is the number of requests allowed per minute per client IP.
	// Zero disables rate limiting.
	RateLimit int
}

// Server handles the dashboard API requests.
type Server struct {
	db     Database
	state  *pagestate.Store
	logger log.Logger
	cfg    Config
}

// NewServer creates and returns a new instance of *Server.
func NewServer(db Database, state *pagestate.Store, logger log.Logger, cfg Config) (*Server, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}

	if state == nil {
		return nil, errors.New("page state store is required")
	}

	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Server{
		db:     db,
		state:  state,
		logger: log.With(logger, "component", "api"),
		cfg:    cfg,
	}, nil
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	chiMux := chi.NewMux()
	chiMux.Use(middleware.RequestID)
	chiMux.Use(middleware.RealIP)
	chiMux.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger.Std(s.logger), NoColor: true}))
	chiMux.Use(middleware.Recoverer)

	chiMux.Get("/healthz", func(res http.ResponseWriter, _ *http.Request) {
		s.writeJSON(res, http.StatusOK, map[string]string{"status": "ok"})
	})

	chiMux.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware(s.cfg.RateLimit))
		r.Use(LatencyMiddleware(s.cfg.Latency))

		r.Route("/students", func(r chi.Router) {
			r.Get("/", s.listStudents)
			r.Post("/", s.addStudent)
			r.Delete("/", s.clearStudents)
			r.Get("/all", s.allStudents)
			r.Get("/{id}", s.getStudent)
			r.Patch("/{id}", s.updateStudent)
			r.Delete("/{id}", s.removeStudent)
		})
		r.Get("/subjects", s.subjects)
		r.Get("/constants", s.constants)

		r.Get("/monitor", s.monitor)
		r.Get("/analysis", s.analysis)
		r.Get("/averages/students/{id}", s.studentAverage)
		r.Get("/averages/subjects/{subject}", s.subjectAverage)

		r.Route("/state", func(r chi.Router) {
			r.Get("/", s.allState)
			r.Delete("/", s.clearAllState)
			r.Post("/analysis/charts", s.moveChart)
			r.Get("/{page}", s.pageState)
			r.Put("/{page}", s.setPageState)
			r.Patch("/{page}", s.updatePageState)
			r.Delete("/{page}", s.clearPageState)
		})
	})

	return chiMux
}
