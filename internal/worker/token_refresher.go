package worker

import (
	"context"
	"log/slog"
	"time"
)

// TokenWarmer makes sure a usable access token is cached.
type TokenWarmer interface {
	WarmToken(ctx context.Context) error
}

// TokenRefresher keeps the processor token cached so payment requests do not
// pay for a token round trip. The interval must be shorter than the client's
// expiry margin for the token to be replaced before it lapses.
type TokenRefresher struct {
	warmer   TokenWarmer
	interval time.Duration
	logger   *slog.Logger
}

func NewTokenRefresher(
	warmer TokenWarmer,
	interval time.Duration,
	logger *slog.Logger,
) *TokenRefresher {
	return &TokenRefresher{
		warmer:   warmer,
		interval: interval,
		logger:   logger,
	}
}

func (w *TokenRefresher) Start(ctx context.Context) {
	w.logger.Info("token refresher started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("token refresher stopping")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *TokenRefresher) refresh(ctx context.Context) {
	if err := w.warmer.WarmToken(ctx); err != nil && ctx.Err() == nil {
		w.logger.Error("token refresh failed", "error", err)
	}
}
