package service

import (
	"context"
	"net/url"

	"amritha-heritage/internal/booking"
	"amritha-heritage/internal/model"

	"github.com/google/uuid"
)

// CatalogService serves the static site content.
type CatalogService interface {
	// Dishes returns the bookable dishes of a category; "All" or empty returns every dish.
	Dishes(ctx context.Context, category string) []model.CatalogItem

	// DishCategories returns "All" followed by the distinct dish categories.
	DishCategories(ctx context.Context) []string

	// Dish retrieves a single dish by ID.
	Dish(ctx context.Context, id string) (*model.CatalogItem, error)

	// Rooms returns every room.
	Rooms(ctx context.Context) []model.CatalogItem

	// Room retrieves a single room by ID.
	Room(ctx context.Context, id string) (*model.CatalogItem, error)

	Destinations(ctx context.Context) []model.Destination
	Features(ctx context.Context) []model.Feature
	Specials(ctx context.Context) []model.CatalogItem
	Highlights(ctx context.Context) []model.CatalogItem

	// Menu returns the dining menu with one section expanded.
	Menu(ctx context.Context, section string) model.MenuView
}

// HeroService exposes the rotating hero carousels.
type HeroService interface {
	// Current returns the slide a page carousel is displaying.
	Current(ctx context.Context, page string) (*model.HeroView, error)

	// Select jumps a page carousel to a slide.
	Select(ctx context.Context, page string, index int) (*model.HeroView, error)
}

// ReservationService drives the booking pages and records their submissions.
type ReservationService interface {
	// TableView renders a table page from its query: "dish" seeds the selection,
	// "selected" restores it, "toggle" flips dishes in order and "category" filters.
	TableView(ctx context.Context, query url.Values) booking.TableView

	// SubmitTable acknowledges a table reservation. A non-empty idempotency key
	// deduplicates resubmissions.
	SubmitTable(ctx context.Context, idempotencyKey string, req booking.TableRequest) (*model.Reservation, error)

	// RoomView renders a room page from its query: "room" seeds the choice and
	// "select" replaces it.
	RoomView(ctx context.Context, query url.Values) booking.RoomView

	// SubmitRoom acknowledges a room booking.
	SubmitRoom(ctx context.Context, idempotencyKey string, req booking.RoomRequest) (*model.Reservation, error)

	// SubmitContact acknowledges a contact message.
	SubmitContact(ctx context.Context, idempotencyKey string, form booking.ContactForm) (*model.Reservation, error)

	// GetByID retrieves an acknowledged reservation.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
}
