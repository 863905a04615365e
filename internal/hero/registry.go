package hero

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"amritha-heritage/internal/model"

	"github.com/rs/zerolog"
)

// Registry owns the rotators of every page carousel.
type Registry struct {
	mu       sync.RWMutex
	rotators map[string]*Rotator
	logger   zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		rotators: make(map[string]*Rotator),
		logger:   logger,
	}
}

// Add registers a rotator under its name, replacing and stopping any
// previous one.
func (reg *Registry) Add(r *Rotator) {
	reg.mu.Lock()
	prev := reg.rotators[r.Name()]
	reg.rotators[r.Name()] = r
	reg.mu.Unlock()

	if prev != nil && prev != r {
		prev.Stop()
	}
}

// Get returns the rotator of a page.
func (reg *Registry) Get(name string) (*Rotator, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.rotators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownPage, name)
	}
	return r, nil
}

// Names returns the registered page names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.rotators))
	for name := range reg.rotators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartAll starts every rotator, bound to ctx.
func (reg *Registry) StartAll(ctx context.Context) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	for _, r := range reg.rotators {
		r.Start(ctx)
	}
	reg.logger.Info().Int("carousels", len(reg.rotators)).Msg("hero rotation started")
}

// StopAll stops every rotator and waits for their goroutines.
func (reg *Registry) StopAll() {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	for _, r := range reg.rotators {
		r.Stop()
	}
	reg.logger.Info().Msg("hero rotation stopped")
}
