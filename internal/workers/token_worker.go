package workers

import (
	"context"
	"time"

	"wagenmarkt_backend/internal/logger"
	"wagenmarkt_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenWorker removes expired refresh tokens so the table does not grow
// without bound.
type TokenWorker struct {
	db               *gorm.DB
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenWorker(db *gorm.DB) *TokenWorker {
	return &TokenWorker{
		db:               db,
		refreshTokenRepo: repositories.NewRefreshTokenRepository(),
		interval:         1 * time.Hour,
	}
}

func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
}

func (w *TokenWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token worker stopped")
			return
		case <-ticker.C:
			removed, err := w.refreshTokenRepo.CleanExpired(w.db)
			if err != nil {
				logger.WithError(err).Error("Failed to clean expired refresh tokens")
			} else if removed > 0 {
				logger.Info("Cleaned expired refresh tokens", "count", removed)
			}
		}
	}
}
