package widget

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/echotab/echotab/pkg/errors"
)

// Registry is a concurrency-safe set of widget manifests keyed by id.
type Registry struct {
	mu     sync.RWMutex
	items  map[string]Manifest
	order  []string
	logger *log.Logger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{
		items:  make(map[string]Manifest),
		logger: logger,
	}
}

// Register adds m, replacing any manifest with the same id. Replacing keeps
// the original registration slot so listings stay in the same order.
func (r *Registry) Register(m Manifest) error {
	if m.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "widget manifest has no id")
	}
	if m.Type == "" {
		m.Type = KindExternal
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; ok {
		r.logger.Warn("overwriting widget manifest", "id", m.ID)
	} else {
		r.order = append(r.order, m.ID)
	}
	r.items[m.ID] = m
	r.logger.Debug("registered widget", "id", m.ID, "type", m.Type)
	return nil
}

// Unregister removes id. It reports whether a manifest was removed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok
}

// Manifest returns the manifest for id or a WIDGET_NOT_FOUND error.
func (r *Registry) Manifest(id string) (Manifest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return Manifest{}, errors.New(errors.ErrCodeWidgetNotFound, "unknown widget type %q", id)
	}
	return m, nil
}

// All returns every manifest in registration order.
func (r *Registry) All() []Manifest {
	return r.filter(func(Manifest) bool { return true })
}

// Builtin returns the manifests shipped with the application.
func (r *Registry) Builtin() []Manifest {
	return r.filter(func(m Manifest) bool { return m.Type == KindBuiltin })
}

// External returns the manifests registered at runtime.
func (r *Registry) External() []Manifest {
	return r.filter(func(m Manifest) bool { return m.Type == KindExternal })
}

// SearchByTag returns the manifests tagged with tag.
func (r *Registry) SearchByTag(tag string) []Manifest {
	return r.filter(func(m Manifest) bool { return m.HasTag(tag) })
}

// Len returns the number of registered manifests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Clear removes every manifest.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]Manifest)
	r.order = nil
}

func (r *Registry) filter(keep func(Manifest) bool) []Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Manifest, 0, len(r.order))
	for _, id := range r.order {
		if m := r.items[id]; keep(m) {
			out = append(out, m)
		}
	}
	return out
}
