package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/entities"
)

// UseCase builds the home page digest
type UseCase struct {
	alerts    deps.AlertSource
	news      deps.NewsSource
	newsLimit int
	logger    zerolog.Logger
}

// NewUseCase creates a new home use case
func NewUseCase(alerts deps.AlertSource, news deps.NewsSource, newsLimit int, logger zerolog.Logger) *UseCase {
	return &UseCase{
		alerts:    alerts,
		news:      news,
		newsLimit: newsLimit,
		logger:    logger.With().Str("usecase", "home").Logger(),
	}
}

// Digest runs the alert and news fetches in one scope. Both operations are
// total, so the digest is always complete; cancelling ctx aborts both calls.
func (u *UseCase) Digest(ctx context.Context) entities.Digest {
	var digest entities.Digest
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		digest.Alert = u.alerts.Current(egCtx)
		return nil
	})

	eg.Go(func() error {
		digest.News = u.news.Fetch(egCtx, u.newsLimit)
		return nil
	})

	_ = eg.Wait()

	u.logger.Debug().
		Int("news_count", len(digest.News)).
		Dur("duration", time.Since(start)).
		Msg("Home digest assembled")

	return digest
}
