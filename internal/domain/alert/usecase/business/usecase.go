package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Fixed alerts returned instead of backend text
const (
	AlertUnavailable = "No active alerts at this time."
	AlertEmpty       = "Main Street closed for maintenance until 5 PM."
	AlertError       = "Standard Operations - No Active Alerts"
)

const alertPrompt = "Generate a realistic, short, one-sentence public safety placeholder alert for a county website (e.g., road closure due to weather or maintenance)."

// UseCase implements the safety alert generator
type UseCase struct {
	generator domain.ContentGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewUseCase creates a new alert use case
func NewUseCase(generator domain.ContentGenerator, m *metrics.Metrics, logger zerolog.Logger) *UseCase {
	return &UseCase{
		generator: generator,
		metrics:   m,
		logger:    logger.With().Str("usecase", "alert").Logger(),
	}
}

// Current returns a one-sentence advisory for the site banner
func (u *UseCase) Current(ctx context.Context) string {
	if !u.generator.Available() {
		u.metrics.RecordOutcome(metrics.OperationAlert, metrics.OutcomeFallbackUnavailable)
		return AlertUnavailable
	}

	start := time.Now()
	text, err := u.generator.Generate(ctx, domain.GenerateRequest{Contents: alertPrompt})
	u.metrics.RecordBackendDuration(metrics.OperationAlert, time.Since(start).Seconds())

	if err != nil {
		u.logger.Error().Err(err).Msg("Alert generation failed")
		u.metrics.RecordOutcome(metrics.OperationAlert, metrics.OutcomeFallbackError)
		return AlertError
	}

	if text == "" {
		u.metrics.RecordOutcome(metrics.OperationAlert, metrics.OutcomeFallbackEmpty)
		return AlertEmpty
	}

	u.metrics.RecordOutcome(metrics.OperationAlert, metrics.OutcomeLive)
	return text
}
