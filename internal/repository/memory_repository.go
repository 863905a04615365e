package repository

import (
	"context"
	"fmt"
	"sync"

	"amritha-heritage/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryReservationRepository keeps reservations in process memory. It is
// used when no database is configured.
type memoryReservationRepository struct {
	mu           sync.RWMutex
	reservations map[uuid.UUID]model.Reservation
	logger       zerolog.Logger
}

// NewMemoryReservationRepository creates an empty in-memory reservation repository.
func NewMemoryReservationRepository(logger zerolog.Logger) ReservationRepository {
	return &memoryReservationRepository{
		reservations: make(map[uuid.UUID]model.Reservation),
		logger:       logger.With().Str("repository", "reservation-memory").Logger(),
	}
}

func (r *memoryReservationRepository) Save(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reservations[res.ID]; exists {
		return fmt.Errorf("failed to create reservation: duplicate id %s", res.ID)
	}
	r.reservations[res.ID] = cloneReservation(*res)

	r.logger.Debug().
		Str("reservation_id", res.ID.String()).
		Int("item_count", len(res.Items)).
		Msg("reservation saved successfully")

	return nil
}

func (r *memoryReservationRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	out := cloneReservation(res)
	return &out, nil
}

func cloneReservation(res model.Reservation) model.Reservation {
	res.Items = append([]model.ReservationItem{}, res.Items...)
	if res.Details != nil {
		details := make(map[string]string, len(res.Details))
		for k, v := range res.Details {
			details[k] = v
		}
		res.Details = details
	}
	return res
}
