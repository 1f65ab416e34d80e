// Package server exposes dashboards over a JSON HTTP API.
//
// Profiles are read and written through a [store.Store]. Drags and resizes
// are server-side interactions: POST .../interactions snapshots the layout
// and returns an id, previews are computed against that snapshot, and
// commit persists the result. At most one interaction per profile is open
// at a time, and other writes to that profile wait with 409 until it ends.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/grid"
	"github.com/echotab/echotab/pkg/store"
	"github.com/echotab/echotab/pkg/widget"
)

// Options configures a [Server].
type Options struct {
	Store    store.Store
	Registry *widget.Registry
	Logger   *log.Logger

	// Grid is used for profiles that have never been saved.
	Grid grid.Config
	// StartRow is the first row scanned when placing new items.
	StartRow int
}

// Server handles the HTTP API.
type Server struct {
	store    store.Store
	registry *widget.Registry
	reducer  *dashboard.Reducer
	logger   *log.Logger
	grid     grid.Config

	// mu serialises every load-modify-save and guards sessions.
	mu       sync.Mutex
	sessions map[string]*session

	newID func() string
	now   func() time.Time
}

// session is an open interaction: the profile state holding the snapshot.
type session struct {
	id      string
	profile string
	state   dashboard.State
	started time.Time
}

// New creates a server. Registry defaults to the builtin widgets and Grid
// to the default grid.
func New(opts Options) *Server {
	if opts.Registry == nil {
		opts.Registry = widget.NewBuiltinRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Grid.Cols < 1 {
		opts.Grid = grid.DefaultConfig()
	}
	r := dashboard.NewReducer(opts.Registry)
	r.StartRow = opts.StartRow

	return &Server{
		store:    opts.Store,
		registry: opts.Registry,
		reducer:  r,
		logger:   opts.Logger,
		grid:     opts.Grid,
		sessions: make(map[string]*session),
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/v1/widgets", s.handleWidgets)

	r.Route("/api/v1/profiles/{profile}", func(r chi.Router) {
		r.Use(s.profileCtx)

		r.Get("/layout", s.handleLayout)

		r.Post("/shortcuts", s.handleAddShortcut)
		r.Delete("/shortcuts/{id}", s.handleRemoveShortcut)

		r.Post("/widgets", s.handleAddWidget)
		r.Patch("/widgets/{id}", s.handleUpdateWidget)
		r.Delete("/widgets/{id}", s.handleRemoveWidget)

		r.Post("/interactions", s.handleBeginInteraction)
		r.Post("/interactions/{iid}/preview", s.handlePreview)
		r.Post("/interactions/{iid}/commit", s.handleCommit)
		r.Delete("/interactions/{iid}", s.handleCancel)
	})

	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// requestLogger logs one line per request with the server's logger.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
