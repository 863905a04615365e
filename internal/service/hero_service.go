package service

import (
	"context"
	"fmt"
	"time"

	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/hero"
	"amritha-heritage/internal/model"

	"github.com/rs/zerolog"
)

// heroService implements HeroService on top of the rotator registry.
type heroService struct {
	content  *catalog.Content
	registry *hero.Registry
	logger   zerolog.Logger
}

// NewHeroService creates a new hero service.
func NewHeroService(content *catalog.Content, registry *hero.Registry, logger zerolog.Logger) HeroService {
	return &heroService{
		content:  content,
		registry: registry,
		logger:   logger.With().Str("service", "hero").Logger(),
	}
}

// NewHeroRegistry builds a stopped rotator for every page carousel of content.
// intervals maps page names to cadences; pages without one use fallback.
func NewHeroRegistry(content *catalog.Content, intervals map[string]time.Duration, fallback time.Duration, logger zerolog.Logger) (*hero.Registry, error) {
	registry := hero.NewRegistry(logger)
	for page, slides := range content.Hero {
		if len(slides) == 0 {
			continue
		}
		interval, ok := intervals[page]
		if !ok || interval <= 0 {
			interval = fallback
		}
		r, err := hero.New(page, len(slides), interval, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create hero rotator: %w", err)
		}
		registry.Add(r)
	}
	return registry, nil
}

func (s *heroService) Current(_ context.Context, page string) (*model.HeroView, error) {
	r, err := s.registry.Get(page)
	if err != nil {
		return nil, err
	}
	return s.view(page, r)
}

func (s *heroService) Select(_ context.Context, page string, index int) (*model.HeroView, error) {
	r, err := s.registry.Get(page)
	if err != nil {
		return nil, err
	}
	if err := r.Select(index); err != nil {
		s.logger.Debug().Str("page", page).Int("index", index).Msg("slide out of range")
		return nil, err
	}

	s.logger.Debug().Str("page", page).Int("index", index).Msg("hero slide selected")
	return s.view(page, r)
}

func (s *heroService) view(page string, r *hero.Rotator) (*model.HeroView, error) {
	slides, ok := s.content.HeroSlides(page)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownPage, page)
	}

	index := r.Current()
	if index >= len(slides) {
		index = len(slides) - 1
	}

	return &model.HeroView{
		Page:       page,
		Index:      index,
		Total:      len(slides),
		IntervalMs: r.Interval().Milliseconds(),
		Slide:      slides[index],
	}, nil
}
