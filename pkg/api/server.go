package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ericlantz/pokedex-api/pkg/httputil"
	"github.com/ericlantz/pokedex-api/pkg/observability"
)

// Server is the HTTP surface over a Storage and an optional ImageStore.
type Server struct {
	storage Storage
	images  ImageStore
	logger  *observability.Logger
	router  *mux.Router
}

// Options configures optional server behavior.
type Options struct {
	// AllowedOrigins is the CORS allowlist. Empty disables CORS headers.
	AllowedOrigins []string
	// RequestTimeout bounds each request; an expired context aborts in-flight
	// queries and rolls back open transactions. Zero disables the bound.
	RequestTimeout time.Duration
	// Metrics, when non-nil, records per-request counters and latencies and
	// exposes them on /metrics.
	Metrics *observability.Metrics
}

// NewServer creates an API server and registers all routes.
func NewServer(storage Storage, images ImageStore, logger *observability.Logger, opts Options) *Server {
	if logger == nil {
		logger = observability.NewLogger(observability.InfoLevel, nil)
	}
	s := &Server{
		storage: storage,
		images:  images,
		logger:  logger,
		router:  mux.NewRouter(),
	}
	s.setupRoutes(opts)
	s.router.Use(httputil.RecoveryMiddleware)
	s.router.Use(httputil.RequestIDMiddleware)
	s.router.Use(httputil.LoggingMiddleware(logger))
	if opts.Metrics != nil {
		s.router.Use(opts.Metrics.Middleware)
	}
	if len(opts.AllowedOrigins) > 0 {
		s.router.Use(httputil.CORSMiddleware(opts.AllowedOrigins))
	}
	if opts.RequestTimeout > 0 {
		s.router.Use(httputil.TimeoutMiddleware(opts.RequestTimeout))
	}
	return s
}

// setupRoutes configures all the API routes
func (s *Server) setupRoutes(opts Options) {
	// Pokémon routes. The name-filter reads are registered before the id
	// route so "types"/"moves" are not swallowed as an {id} match.
	s.router.HandleFunc("/pokemon/types/{type}", s.listPokemonByType).Methods("GET")
	s.router.HandleFunc("/pokemon/moves/{move}", s.listPokemonByMove).Methods("GET")
	s.router.HandleFunc("/pokemon", s.listPokemon).Methods("GET")
	s.router.HandleFunc("/pokemon", s.createPokemon).Methods("POST")
	s.router.HandleFunc("/pokemon", s.updatePokemon).Methods("PUT")
	s.router.HandleFunc("/pokemon/{id:[0-9]+}", s.getPokemon).Methods("GET")
	s.router.HandleFunc("/pokemon/{id:[0-9]+}", s.updatePokemon).Methods("PUT")
	s.router.HandleFunc("/pokemon/{id:[0-9]+}", s.deletePokemon).Methods("DELETE")

	// Move routes
	s.router.HandleFunc("/moves", s.listMoves).Methods("GET")
	s.router.HandleFunc("/moves", s.createMove).Methods("POST")
	s.router.HandleFunc("/moves/{id:[0-9]+}", s.getMove).Methods("GET")
	s.router.HandleFunc("/moves/{id:[0-9]+}", s.updateMove).Methods("PUT")
	s.router.HandleFunc("/moves/{id:[0-9]+}", s.deleteMove).Methods("DELETE")

	// Type routes
	s.router.HandleFunc("/types", s.listTypes).Methods("GET")
	s.router.HandleFunc("/types", s.createType).Methods("POST")
	s.router.HandleFunc("/types/{id:[0-9]+}", s.getType).Methods("GET")
	s.router.HandleFunc("/types/{id:[0-9]+}", s.updateType).Methods("PUT")
	s.router.HandleFunc("/types/{id:[0-9]+}", s.deleteType).Methods("DELETE")

	// Species routes. Creation lives under /pokemon/species for historical
	// client compatibility.
	s.router.HandleFunc("/pokemon/species", s.createSpecies).Methods("POST")
	s.router.HandleFunc("/species", s.listSpecies).Methods("GET")
	s.router.HandleFunc("/species/{id:[0-9]+}", s.getSpecies).Methods("GET")
	s.router.HandleFunc("/species/{id:[0-9]+}", s.updateSpecies).Methods("PUT")
	s.router.HandleFunc("/species/{id:[0-9]+}", s.deleteSpecies).Methods("DELETE")

	// Nature routes
	s.router.HandleFunc("/natures", s.listNatures).Methods("GET")
	s.router.HandleFunc("/natures", s.createNature).Methods("POST")
	s.router.HandleFunc("/natures/{id:[0-9]+}", s.getNature).Methods("GET")
	s.router.HandleFunc("/natures/{id:[0-9]+}", s.updateNature).Methods("PUT")
	s.router.HandleFunc("/natures/{id:[0-9]+}", s.deleteNature).Methods("DELETE")

	// Operational routes
	s.router.HandleFunc("/healthz", s.liveness).Methods("GET")
	s.router.HandleFunc("/readyz", s.readiness).Methods("GET")
	if opts.Metrics != nil {
		s.router.Handle("/metrics", opts.Metrics.Handler()).Methods("GET")
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// liveness handles GET /healthz
func (s *Server) liveness(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, map[string]string{"status": "ok"})
}

// readiness handles GET /readyz
func (s *Server) readiness(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.HealthCheck(r.Context()); err != nil {
		s.logger.WithError(err).Error("readiness check failed")
		httputil.WriteErrorMessage(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	httputil.WriteSuccess(w, map[string]string{"status": "ok"})
}
