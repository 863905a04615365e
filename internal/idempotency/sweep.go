package idempotency

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepBatch bounds how many expired records one sweep removes.
const DefaultSweepBatch = 500

// Sweep removes expired records every interval until ctx is cancelled.
func Sweep(ctx context.Context, store Store, interval time.Duration, batch int, logger zerolog.Logger) {
	logger = logger.With().Str("component", "idempotency").Logger()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, time.Minute)
			removed, err := store.CleanupExpired(runCtx, time.Now().UTC(), batch)
			cancel()
			if err != nil {
				logger.Error().Err(err).Msg("idempotency cleanup failed")
				continue
			}
			if removed > 0 {
				logger.Info().Int("count", removed).Msg("idempotency cleanup removed records")
			}
		case <-ctx.Done():
			return
		}
	}
}
