package ingest

import (
	"fmt"
	"strings"
	"sync"
)

// Flattener normalizes one input format into the flat text layout the
// section splitter and test case parser consume.
type Flattener interface {
	Flatten(content []byte) (string, error)
	SupportedExtensions() []string
}

// Registry maps file extensions to flatteners.
type Registry interface {
	Register(f Flattener)
	FlattenerFor(extension string) (Flattener, error)
}

// DefaultRegistry is a thread-safe flattener registry with fallback support.
type DefaultRegistry struct {
	mu         sync.RWMutex
	flatteners map[string]Flattener
	fallback   Flattener
}

// NewRegistry creates a new DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		flatteners: make(map[string]Flattener),
	}
}

// Register adds a flattener for each of its supported extensions.
func (r *DefaultRegistry) Register(f Flattener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range f.SupportedExtensions() {
		ext = strings.TrimPrefix(ext, ".")
		r.flatteners[ext] = f
	}
}

// SetFallback sets the fallback flattener for unregistered extensions.
func (r *DefaultRegistry) SetFallback(f Flattener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = f
}

// FlattenerFor returns the flattener registered for the given file
// extension, or the fallback when none is registered.
func (r *DefaultRegistry) FlattenerFor(extension string) (Flattener, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext := strings.TrimPrefix(extension, ".")
	if f, ok := r.flatteners[ext]; ok {
		return f, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("no flattener registered for extension %q", extension)
}
