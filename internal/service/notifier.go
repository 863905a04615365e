package service

import (
	"context"

	"amritha-heritage/internal/model"

	"github.com/rs/zerolog"
)

// Notifier tells the front desk about a new reservation.
type Notifier interface {
	Notify(ctx context.Context, reservation *model.Reservation) error
}

// logNotifier writes reservations to the structured log.
type logNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier that logs every reservation.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	return &logNotifier{logger: logger.With().Str("component", "notifier").Logger()}
}

func (n *logNotifier) Notify(_ context.Context, res *model.Reservation) error {
	n.logger.Info().
		Str("reservation_id", res.ID.String()).
		Str("kind", string(res.Kind)).
		Str("guest", res.GuestName).
		Int("item_count", len(res.Items)).
		Str("total", res.Total.StringFixed(2)).
		Msg("reservation received")
	return nil
}
