package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
)

// FileStore keeps each profile in <dir>/<profile>.json.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, storageError(err, "create profile dir")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(profile string) (string, error) {
	if err := errors.ValidateProfileName(profile); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, profile+".json"), nil
}

func (s *FileStore) Load(ctx context.Context, profile string) (*dashboard.State, error) {
	path, err := s.path(profile)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, storageError(err, "read profile %s", profile)
	}
	st, err := decode(data)
	if err != nil {
		return nil, storageError(err, "profile %s", profile)
	}
	return st, nil
}

// Save writes through a temporary file so a crash never leaves a truncated
// profile behind.
func (s *FileStore) Save(ctx context.Context, profile string, st *dashboard.State) error {
	path, err := s.path(profile)
	if err != nil {
		return err
	}
	data, err := encode(st)
	if err != nil {
		return storageError(err, "profile %s", profile)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, profile+".*.tmp")
	if err != nil {
		return storageError(err, "write profile %s", profile)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return storageError(err, "write profile %s", profile)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return storageError(err, "write profile %s", profile)
	}
	if err := tmp.Close(); err != nil {
		return storageError(err, "write profile %s", profile)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return storageError(err, "write profile %s", profile)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, profile string) error {
	path, err := s.path(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return storageError(err, "remove profile %s", profile)
	}
	return nil
}

// Profiles lists the saved profile names.
func (s *FileStore) Profiles() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, storageError(err, "read profile dir")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".json")])
	}
	return names, nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the profile directory.
func (s *FileStore) Path() string {
	return s.dir
}

var _ Store = (*FileStore)(nil)
