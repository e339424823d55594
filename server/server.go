// Package server exposes the topology registry over a small read-only HTTP
// API so a launcher on another machine can fetch generated fabrics.
//
//	GET /health
//	GET /topologies
//	GET /topologies/{name}?k=4&r=1[&format=yaml]
//	GET /topologies/{name}/stats?k=4&r=1[&sources=8]
//
// Every request builds a fresh graph; nothing is cached.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/dctopo/builder"
	"github.com/katalvlaran/dctopo/export"
	"github.com/katalvlaran/dctopo/registry"
	"github.com/katalvlaran/dctopo/stats"
)

// Reserved query keys; every other key is a generator parameter.
const (
	queryFormat  = "format"
	querySources = "sources"
)

// Option configures a Server.
type Option func(*Server)

// DefaultMaxNodes is the per-request node ceiling of a Server built without
// WithMaxNodes.
const DefaultMaxNodes = 100000

// WithMaxNodes caps the size of fabrics built per request (0 = unlimited).
func WithMaxNodes(n int) Option {
	return func(s *Server) { s.maxNodes = n }
}

// WithReadTimeout sets the http.Server read timeout used by Run.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) { s.readTimeout = d }
}

// Server serves a registry.
type Server struct {
	reg         *registry.Registry
	logger      *zap.Logger
	maxNodes    int
	readTimeout time.Duration
}

// New returns a Server over reg. A nil logger is replaced by zap.NewNop().
func New(reg *registry.Registry, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{reg: reg, logger: logger, maxNodes: DefaultMaxNodes, readTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the routed handler with middleware.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(ensureRequestID)
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(s.logger))

	router.Get("/health", s.health)
	router.Route("/topologies", func(r chi.Router) {
		r.Get("/", s.list)
		r.Get("/{name}", s.build)
		r.Get("/{name}/stats", s.stats)
	})

	return router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readTimeout,
		ReadTimeout:       s.readTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		s.logger.Info("stopped")
		return nil
	}
}

// topologyInfo is one entry of GET /topologies.
type topologyInfo struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Params      []registry.ParamSpec `json:"params"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	names := s.reg.Names()
	out := make([]topologyInfo, 0, len(names))
	for _, name := range names {
		f, err := s.reg.Lookup(name)
		if err != nil {
			continue
		}
		out = append(out, topologyInfo{Name: f.Name, Description: f.Description, Params: f.Params})
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) build(w http.ResponseWriter, r *http.Request) {
	format := export.FormatJSON
	if v := r.URL.Query().Get(queryFormat); v != "" {
		f, err := export.ParseFormat(v)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		format = f
	}

	doc, err := s.document(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if err = export.Encode(w, doc, format); err != nil {
		s.logger.Error("encode failed", zap.Error(err))
	}
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	values, sources, err := s.queryParams(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	g, err := s.reg.Build(name, values, s.builderOptions()...)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	sum, err := stats.Analyze(g, stats.WithContext(r.Context()), stats.WithSources(sources))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sum)
}

// document builds the requested fabric and describes it.
func (s *Server) document(r *http.Request) (*export.Document, error) {
	name := chi.URLParam(r, "name")
	values, _, err := s.queryParams(r)
	if err != nil {
		return nil, err
	}
	f, args, err := s.reg.Resolve(name, values)
	if err != nil {
		return nil, err
	}
	g, err := s.reg.Build(name, values, s.builderOptions()...)
	if err != nil {
		return nil, err
	}
	resolved := make(map[string]int, len(args))
	for i, p := range f.Params {
		resolved[p.Name] = args[i]
	}

	return export.FromGraph(g, name, resolved)
}

// queryParams splits the query into generator params and the sources knob.
func (s *Server) queryParams(r *http.Request) (map[string]any, int, error) {
	raw := make(map[string]string)
	sources := 0
	for key, vals := range r.URL.Query() {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case queryFormat:
		case querySources:
			n, err := registry.ParseInt(vals[0])
			if err != nil {
				return nil, 0, fmt.Errorf("server: sources: %w", err)
			}
			sources = n
		default:
			raw[key] = vals[0]
		}
	}
	values, err := registry.FromStrings(raw)

	return values, sources, err
}

func (s *Server) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithLogger(s.logger)}
	if s.maxNodes > 0 {
		opts = append(opts, builder.WithMaxNodes(s.maxNodes))
	}

	return opts
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// statusFor maps sentinel errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnknownTopology):
		return http.StatusNotFound
	case errors.Is(err, builder.ErrParamType),
		errors.Is(err, builder.ErrParamRange),
		errors.Is(err, registry.ErrUnknownParam),
		errors.Is(err, registry.ErrDuplicateParam),
		errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.respondJSON(w, status, errorBody{Error: err.Error(), RequestID: chimiddleware.GetReqID(r.Context())})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
