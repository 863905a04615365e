package service

import (
	"context"
	"fmt"

	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService over content loaded at start-up.
type catalogService struct {
	content *catalog.Content
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(content *catalog.Content, logger zerolog.Logger) CatalogService {
	return &catalogService{
		content: content,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) Dishes(_ context.Context, category string) []model.CatalogItem {
	return s.content.Dishes.Filter(category)
}

func (s *catalogService) DishCategories(_ context.Context) []string {
	return s.content.Dishes.Categories()
}

func (s *catalogService) Dish(_ context.Context, id string) (*model.CatalogItem, error) {
	return s.lookup(s.content.Dishes, "dish", id)
}

func (s *catalogService) Rooms(_ context.Context) []model.CatalogItem {
	return s.content.Rooms.Items()
}

func (s *catalogService) Room(_ context.Context, id string) (*model.CatalogItem, error) {
	return s.lookup(s.content.Rooms, "room", id)
}

func (s *catalogService) lookup(c *catalog.Catalog, kind, id string) (*model.CatalogItem, error) {
	item, ok := c.Get(id)
	if !ok {
		s.logger.Debug().Str(kind+"_id", id).Msg(kind + " not found")
		return nil, fmt.Errorf("%w: %s %s", model.ErrItemNotFound, kind, id)
	}
	return &item, nil
}

func (s *catalogService) Destinations(_ context.Context) []model.Destination {
	return append([]model.Destination{}, s.content.Destinations...)
}

func (s *catalogService) Features(_ context.Context) []model.Feature {
	return append([]model.Feature{}, s.content.Features...)
}

func (s *catalogService) Specials(_ context.Context) []model.CatalogItem {
	return append([]model.CatalogItem{}, s.content.Specials...)
}

func (s *catalogService) Highlights(_ context.Context) []model.CatalogItem {
	return append([]model.CatalogItem{}, s.content.Highlights...)
}

func (s *catalogService) Menu(_ context.Context, section string) model.MenuView {
	return s.content.MenuView(section)
}
