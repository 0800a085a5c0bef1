// Package web serves the NetworkHub pages, the JSON API and the live
// telemetry stream.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mfreeman451/networkhub/pkg/config"
	httpx "github.com/mfreeman451/networkhub/pkg/http"
	"github.com/mfreeman451/networkhub/pkg/metrics"
)

//go:embed static/*
var staticContent embed.FS

const defaultStreamInterval = 2 * time.Second

// Option customizes a Server.
type Option func(*Server)

// WithMetrics reports requests, snapshots and stream clients to c.
func WithMetrics(c metrics.Collector) Option {
	return func(s *Server) {
		s.metrics = c
	}
}

// WithCheckOrigin overrides the websocket origin check.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

type Server struct {
	router   *mux.Router
	catalog  CatalogSource
	gen      Snapshotter
	metrics  metrics.Collector
	upgrader websocket.Upgrader
	siteName string
	debug    bool
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer builds the router. Every catalog category is resolved here, so
// a missing category panics at startup instead of failing a request.
func NewServer(cfg *config.ServerConfig, cat CatalogSource, gen Snapshotter, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		router:   mux.NewRouter(),
		catalog:  cat,
		gen:      gen,
		metrics:  metrics.Nop{},
		siteName: cfg.SiteName,
		debug:    cfg.Debug,
		interval: time.Duration(cfg.StreamInterval),
		ctx:      ctx,
		cancel:   cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	if s.interval <= 0 {
		s.interval = defaultStreamInterval
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Router exposes the underlying router.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Close ends all open telemetry streams.
func (s *Server) Close() {
	s.cancel()
}

func (s *Server) setupRoutes() {
	s.router.Use(
		httpx.PanicRecovery,
		httpx.RequestID,
	)

	if s.debug {
		s.router.Use(httpx.Logging)
	}

	s.router.Use(
		mux.MiddlewareFunc(httpx.Metrics(s.metrics, routeTemplate)),
		httpx.CommonMiddleware,
	)

	s.setupPageRoutes()

	for _, rt := range apiRoutes {
		s.router.HandleFunc(rt.path, s.snapshotHandler(rt)).Methods(http.MethodGet, http.MethodOptions)
	}

	s.router.HandleFunc("/api/catalog/{category}", s.getCatalogCategory).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/openapi.yaml", s.getOpenAPI).Methods(http.MethodGet)
	s.router.HandleFunc("/ws/telemetry", s.streamTelemetry).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	s.setupStaticFileServing()
}

func (s *Server) setupStaticFileServing() {
	fsys, err := fs.Sub(staticContent, "static")
	if err != nil {
		log.Printf("Error setting up static file serving: %v", err)
		return
	}

	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(fsys))))
}

func (*Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v as the whole response body. Debug mode indents it.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	if s.debug {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}

	return "unmatched"
}
