// Package config loads echotab settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/echotab/config.toml (falling back to
// ~/.config/echotab/config.toml). Every key is optional; missing keys keep
// the values from [Default]:
//
//	[grid]
//	cols = 12
//	rows = 8
//	cell_size = 96
//	gap = 16
//	position = "c"
//
//	[placement]
//	start_row = 0
//
//	[store]
//	backend = "file" # file, memory, redis or mongo
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
)

// AppName names the config and data directories.
const AppName = "echotab"

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the full settings file.
type Config struct {
	Grid      grid.Config `toml:"grid"`
	Placement Placement   `toml:"placement"`
	Store     Store       `toml:"store"`
	Server    Server      `toml:"server"`
	Log       Log         `toml:"log"`
}

// Placement controls where new items land.
type Placement struct {
	StartRow int `toml:"start_row"`
}

// Store selects and configures the persistence backend.
type Store struct {
	Backend string `toml:"backend"`

	// Dir holds one JSON file per profile for the file backend.
	// Empty means the default data directory.
	Dir string `toml:"dir,omitempty"`

	RedisAddr     string `toml:"redis_addr,omitempty"`
	RedisPassword string `toml:"redis_password,omitempty"`
	RedisDB       int    `toml:"redis_db,omitempty"`
	RedisPrefix   string `toml:"redis_prefix,omitempty"`

	MongoURI        string `toml:"mongo_uri,omitempty"`
	MongoDatabase   string `toml:"mongo_database,omitempty"`
	MongoCollection string `toml:"mongo_collection,omitempty"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Grid: grid.DefaultConfig(),
		Store: Store{
			Backend:         BackendFile,
			RedisAddr:       "localhost:6379",
			RedisPrefix:     "echotab:profile:",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   AppName,
			MongoCollection: "profiles",
		},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info"},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error. An empty path means [Path].
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML data over cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate checks every section and returns an INVALID_CONFIG error for the
// first problem found.
func (c Config) Validate() error {
	g := c.Grid
	switch {
	case g.Cols < 1:
		return invalid("grid.cols must be at least 1, got %d", g.Cols)
	case g.Rows < 1:
		return invalid("grid.rows must be at least 1, got %d", g.Rows)
	case g.CellSize < 0:
		return invalid("grid.cell_size cannot be negative, got %d", g.CellSize)
	case g.Gap < 0:
		return invalid("grid.gap cannot be negative, got %d", g.Gap)
	case !grid.ValidPositions[g.Position]:
		return invalid("grid.position %q is not one of lt, t, rt, l, c, r, lb, b, rb", g.Position)
	case c.Placement.StartRow < 0:
		return invalid("placement.start_row cannot be negative, got %d", c.Placement.StartRow)
	}

	switch c.Store.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return invalid("store.redis_addr is required for the redis backend")
		}
	case BackendMongo:
		if c.Store.MongoURI == "" || c.Store.MongoDatabase == "" || c.Store.MongoCollection == "" {
			return invalid("store.mongo_uri, mongo_database and mongo_collection are required for the mongo backend")
		}
	default:
		return invalid("store.backend %q is not one of file, memory, redis, mongo", c.Store.Backend)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q: %v", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the configured level, or info if it does not parse.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes c to path, creating parent directories. An existing file is
// only replaced when overwrite is set.
func (c Config) Save(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
		}
	}
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}
