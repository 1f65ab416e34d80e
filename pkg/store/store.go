// Package store persists dashboard profiles.
//
// A profile is one named dashboard (grid, layout, shortcuts and widgets).
// Four backends implement [Store]:
//   - [FileStore]: one JSON file per profile, for the CLI
//   - [MemoryStore]: process-local, for tests and throwaway servers
//   - [RedisStore]: one key per profile, for shared deployments
//   - [MongoStore]: one document per profile
//
// [Open] picks the backend named in the configuration and wraps it so every
// load and save is logged and reported to the observability hooks. The
// active drag or resize of a state is never persisted.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/echotab/echotab/pkg/config"
	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
	"github.com/echotab/echotab/pkg/observability"
)

// DefaultProfile is used when no profile is named.
const DefaultProfile = "default"

// Store loads and saves dashboard profiles.
type Store interface {
	// Load returns the saved state of profile, or nil, nil if it was never
	// saved.
	Load(ctx context.Context, profile string) (*dashboard.State, error)

	// Save replaces the saved state of profile.
	Save(ctx context.Context, profile string, s *dashboard.State) error

	// Delete removes profile. Deleting an unknown profile is not an error.
	Delete(ctx context.Context, profile string) error

	// Close releases backend resources.
	Close() error
}

// Open creates the backend selected by cfg.Store.Backend.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	sc := cfg.Store

	var (
		s   Store
		err error
	)
	switch sc.Backend {
	case config.BackendFile, "":
		dir, derr := cfg.ProfileDir()
		if derr != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, derr, "resolve profile directory")
		}
		s, err = NewFileStore(dir)
	case config.BackendMemory:
		s = NewMemoryStore()
	case config.BackendRedis:
		s, err = NewRedisStore(ctx, RedisOptions{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPassword,
			DB:       sc.RedisDB,
			Prefix:   sc.RedisPrefix,
		})
	case config.BackendMongo:
		s, err = NewMongoStore(ctx, MongoOptions{
			URI:        sc.MongoURI,
			Database:   sc.MongoDatabase,
			Collection: sc.MongoCollection,
		})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown store backend %q", sc.Backend)
	}
	if err != nil {
		return nil, err
	}

	backend := sc.Backend
	if backend == "" {
		backend = config.BackendFile
	}
	logger.Debug("opened store", "backend", backend)
	return Instrument(s, backend, logger), nil
}

// =============================================================================
// Encoding
// =============================================================================

func encode(s *dashboard.State) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*dashboard.State, error) {
	var s dashboard.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return normalize(&s), nil
}

// normalize fills in a grid for states saved without one.
func normalize(s *dashboard.State) *dashboard.State {
	if s.Grid.Cols < 1 {
		s.Grid = grid.DefaultConfig()
	}
	return s
}

// =============================================================================
// Instrumentation
// =============================================================================

// Instrument wraps s so every call is logged at debug level and reported to
// [observability.Store].
func Instrument(s Store, backend string, logger *log.Logger) Store {
	return &instrumented{Store: s, backend: backend, logger: logger}
}

type instrumented struct {
	Store
	backend string
	logger  *log.Logger
}

func (i *instrumented) Load(ctx context.Context, profile string) (*dashboard.State, error) {
	start := time.Now()
	st, err := i.Store.Load(ctx, profile)
	observability.Store().OnLoad(ctx, i.backend, profile, st != nil, time.Since(start), err)
	if err != nil {
		i.logger.Debug("load failed", "backend", i.backend, "profile", profile, "err", err)
		return nil, err
	}
	i.logger.Debug("loaded profile", "backend", i.backend, "profile", profile, "found", st != nil)
	return st, nil
}

func (i *instrumented) Save(ctx context.Context, profile string, s *dashboard.State) error {
	start := time.Now()
	err := i.Store.Save(ctx, profile, s)
	size := 0
	if data, eerr := json.Marshal(s); eerr == nil {
		size = len(data)
	}
	observability.Store().OnSave(ctx, i.backend, profile, size, time.Since(start), err)
	if err != nil {
		i.logger.Debug("save failed", "backend", i.backend, "profile", profile, "err", err)
		return err
	}
	i.logger.Debug("saved profile", "backend", i.backend, "profile", profile, "items", len(s.Layout))
	return nil
}

// LoadOrNew loads profile from s, falling back to an empty dashboard on g.
func LoadOrNew(ctx context.Context, s Store, profile string, g grid.Config) (dashboard.State, error) {
	st, err := s.Load(ctx, profile)
	if err != nil {
		return dashboard.State{}, err
	}
	if st == nil {
		fresh := dashboard.NewState()
		fresh.Grid = g
		return fresh, nil
	}
	return *st, nil
}

func storageError(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeStorage, err, format, args...)
}
