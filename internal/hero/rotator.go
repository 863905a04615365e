// Package hero drives the rotating hero carousels of the site pages.
package hero

import (
	"context"
	"fmt"
	"sync"
	"time"

	"amritha-heritage/internal/model"

	"github.com/rs/zerolog"
)

// Default rotation cadences.
const (
	DefaultHomeInterval          = 6 * time.Second
	DefaultAccommodationInterval = 7 * time.Second
)

// Rotator advances a slide index on a fixed cadence. Select overrides the
// index immediately without resetting the cadence. A Rotator is safe for
// concurrent use.
type Rotator struct {
	name     string
	length   int
	interval time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	index   int
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped rotator over length slides.
func New(name string, length int, interval time.Duration, logger zerolog.Logger) (*Rotator, error) {
	if length <= 0 {
		return nil, fmt.Errorf("rotator %s: length must be positive, got %d", name, length)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("rotator %s: interval must be positive, got %s", name, interval)
	}

	return &Rotator{
		name:     name,
		length:   length,
		interval: interval,
		logger:   logger.With().Str("component", "hero-rotator").Str("page", name).Logger(),
	}, nil
}

// Name returns the page the rotator belongs to.
func (r *Rotator) Name() string {
	return r.name
}

// Len returns the number of slides.
func (r *Rotator) Len() int {
	return r.length
}

// Interval returns the rotation cadence.
func (r *Rotator) Interval() time.Duration {
	return r.interval
}

// Start begins advancing the index every interval until ctx is cancelled or
// Stop is called. Starting a running rotator is a no-op.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true

	go r.run(ctx, r.done)

	r.logger.Debug().Dur("interval", r.interval).Msg("hero rotation started")
}

func (r *Rotator) run(ctx context.Context, done chan struct{}) {
	defer func() {
		// A cancelled parent ends the run without Stop; clear the state so
		// the rotator can be started again. A later Start owns a new done.
		r.mu.Lock()
		if r.done == done {
			r.cancel()
			r.running = false
			r.cancel = nil
			r.done = nil
		}
		r.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}

// Stop halts rotation and waits for the ticker goroutine to exit. Stopping a
// stopped rotator is a no-op.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	cancel, done := r.cancel, r.done
	r.running = false
	r.cancel = nil
	r.done = nil
	r.mu.Unlock()

	cancel()
	<-done

	r.logger.Debug().Msg("hero rotation stopped")
}

// Running reports whether the rotator is started.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Advance moves to the next slide, wrapping around, and returns the new index.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % r.length
	return r.index
}

// Select jumps to slide i.
func (r *Rotator) Select(i int) error {
	if i < 0 || i >= r.length {
		return fmt.Errorf("%w: %d not in [0, %d)", model.ErrInvalidSlide, i, r.length)
	}

	r.mu.Lock()
	r.index = i
	r.mu.Unlock()
	return nil
}

// Current returns the displayed slide index.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}
