package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/mapfn"
)

// UseCase implements the news aggregator
type UseCase struct {
	generator    domain.ContentGenerator
	defaultLimit int
	metrics      *metrics.Metrics
	logger       zerolog.Logger
	now          func() time.Time
}

// NewUseCase creates a new news use case
func NewUseCase(
	generator domain.ContentGenerator,
	newsCfg *config.NewsConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		generator:    generator,
		defaultLimit: newsCfg.DefaultLimit,
		metrics:      m,
		logger:       logger.With().Str("usecase", "news").Logger(),
		now:          time.Now,
	}
}

// Fetch returns up to limit live items, or the fallback list when live news
// is unavailable or unusable. A non-positive limit selects the default.
func (u *UseCase) Fetch(ctx context.Context, limit int) []entities.NewsItem {
	if limit <= 0 {
		limit = u.defaultLimit
	}

	items := u.fetch(ctx, limit)
	u.metrics.RecordNewsServed(len(items))
	return items
}

// FetchBySource returns news grouped per partner publication
func (u *UseCase) FetchBySource(ctx context.Context, limit int) []entities.SourceGroup {
	return GroupBySource(u.Fetch(ctx, limit), entities.Publications)
}

func (u *UseCase) fetch(ctx context.Context, limit int) []entities.NewsItem {
	now := u.now()

	if !u.generator.Available() {
		u.metrics.RecordOutcome(metrics.OperationNews, metrics.OutcomeFallbackUnavailable)
		return FallbackNews(now)
	}

	start := time.Now()
	text, err := u.generator.Generate(ctx, domain.GenerateRequest{
		Contents:  buildPrompt(now),
		WebSearch: true,
	})
	u.metrics.RecordBackendDuration(metrics.OperationNews, time.Since(start).Seconds())

	if err != nil {
		u.logger.Error().Err(err).Msg("News fetch failed")
		u.metrics.RecordOutcome(metrics.OperationNews, metrics.OutcomeFallbackError)
		return FallbackNews(now)
	}

	raw, err := parseItems(extractArray(text))
	if err != nil {
		u.logger.Warn().Err(err).Int("text_len", len(text)).Msg("Failed to parse news JSON")
		u.metrics.RecordOutcome(metrics.OperationNews, metrics.OutcomeFallbackParse)
		return FallbackNews(now)
	}

	if len(raw) == 0 {
		u.logger.Debug().Msg("Backend returned no news items")
		u.metrics.RecordOutcome(metrics.OperationNews, metrics.OutcomeFallbackEmpty)
		return FallbackNews(now)
	}

	u.metrics.RecordOutcome(metrics.OperationNews, metrics.OutcomeLive)

	u.logger.Debug().
		Int("received", len(raw)).
		Int("limit", limit).
		Msg("Live news parsed")

	return normalize(mapfn.Take(raw, limit), now)
}
