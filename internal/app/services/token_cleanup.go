package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// tokenCleaner removes stale refresh token rows
type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// StartTokenCleanup launches a background loop that periodically removes
// expired and long-revoked refresh tokens. It runs until ctx is cancelled.
func StartTokenCleanup(ctx context.Context, store tokenCleaner, interval time.Duration, lgr zerolog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := store.CleanupExpiredTokens(ctx)
				if err != nil {
					lgr.Error().Err(err).Msg("Refresh token cleanup failed")
					continue
				}
				if removed > 0 {
					lgr.Info().Int64("removed", removed).Msg("Removed stale refresh tokens")
				}
			}
		}
	}()
}
