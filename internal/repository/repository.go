package repository

import (
	"context"

	"amritha-heritage/internal/model"

	"github.com/google/uuid"
)

// ReservationRepository stores acknowledged submissions.
type ReservationRepository interface {
	// Save persists a reservation and its items atomically.
	Save(ctx context.Context, reservation *model.Reservation) error

	// GetByID retrieves a reservation with its items.
	// Returns nil without error when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
}
