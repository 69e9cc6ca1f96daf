package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Fixed answers returned instead of backend text
const (
	AnswerUnavailable = "Search is currently unavailable (API Key missing). Please check your configuration."
	AnswerNotFound    = "I couldn't find specific information on that. Please try the Services or Government sections."
	AnswerError       = "An error occurred while searching. Please try again later."
)

const (
	temperature     float32 = 0.4
	maxOutputTokens int32   = 300
)

const systemPreamble = `You are the Official AI Assistant for the Nassau County Website.

Your capabilities include:
1. **General Information**: Helping residents find departments, news, and services.
2. **Form Finder**: If a user asks for a form (e.g., "building permit", "marriage license"), explain exactly where to find it or summarize the steps.
3. **Itinerary Planner**: If a user is a visitor (e.g., "plan a day trip"), suggest a list of parks, museums, and beaches from the website's content.

The website has the following sections:
- Home: Quick links, news.
- Government: Directory of departments (Police, Parks, Health, etc.), County Executive.
- Services: Residents, Business, Visitors categories.
- News & Alerts: Latest updates.
- Events: Community calendar.
- Map: Interactive county map / Destination Explorer.
- Emergency: Police, Fire, Hospital info.
- Transportation: Bus, Rail, and Air info.
- Contact: Feedback forms.

**Style Guidelines**:
- Keep answers concise (max 3-4 sentences unless listing an itinerary).
- Be professional, welcoming, and authoritative.
- If suggesting a page, mention the section name (e.g., "Visit the Services section").

`

// UseCase implements the site assistant
type UseCase struct {
	generator domain.ContentGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewUseCase creates a new assistant use case
func NewUseCase(generator domain.ContentGenerator, m *metrics.Metrics, logger zerolog.Logger) *UseCase {
	return &UseCase{
		generator: generator,
		metrics:   m,
		logger:    logger.With().Str("usecase", "assistant").Logger(),
	}
}

// Ask answers a resident question. It never fails: every error path
// resolves to one of the fixed answers.
func (u *UseCase) Ask(ctx context.Context, query string) string {
	if !u.generator.Available() {
		u.metrics.RecordOutcome(metrics.OperationSearch, metrics.OutcomeFallbackUnavailable)
		return AnswerUnavailable
	}

	start := time.Now()
	text, err := u.generator.Generate(ctx, BuildRequest(query))
	u.metrics.RecordBackendDuration(metrics.OperationSearch, time.Since(start).Seconds())

	if err != nil {
		u.logger.Error().Err(err).Int("query_len", len(query)).Msg("Search request failed")
		u.metrics.RecordOutcome(metrics.OperationSearch, metrics.OutcomeFallbackError)
		return AnswerError
	}

	if text == "" {
		u.logger.Debug().Msg("Backend returned no text for search")
		u.metrics.RecordOutcome(metrics.OperationSearch, metrics.OutcomeFallbackEmpty)
		return AnswerNotFound
	}

	u.metrics.RecordOutcome(metrics.OperationSearch, metrics.OutcomeLive)
	return text
}

// BuildRequest assembles the backend request for a query
func BuildRequest(query string) domain.GenerateRequest {
	temp := temperature
	return domain.GenerateRequest{
		Contents:          "User Query: " + query,
		SystemInstruction: systemPreamble + "User Query: " + query,
		Temperature:       &temp,
		MaxOutputTokens:   maxOutputTokens,
	}
}
