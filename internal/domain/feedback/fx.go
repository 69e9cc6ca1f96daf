package feedback

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	feedbackhttp "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/delivery/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/repository/postgres"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/usecase/business"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http/server"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/kafka"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Module provides contact feedback components for fx DI
var Module = fx.Module("feedback",
	fx.Provide(postgres.NewFeedbackRepository),
	fx.Provide(providePublisher),
	fx.Provide(NewUseCaseFx),
	fx.Provide(NewFeedbackHandlerFx),
	fx.Provide(NewRouterFx),
	fx.Invoke(RegisterRoutes),
)

func providePublisher(producer *kafka.Producer) deps.EventPublisher {
	return producer
}

// NewUseCaseFx creates the feedback use case for fx DI
func NewUseCaseFx(
	repo deps.FeedbackRepository,
	publisher deps.EventPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.FeedbackService {
	return business.NewUseCase(repo, publisher, m, logger)
}

// NewFeedbackHandlerFx creates the feedback handler for fx DI
func NewFeedbackHandlerFx(service deps.FeedbackService, logger zerolog.Logger) *feedbackhttp.FeedbackHandler {
	return feedbackhttp.NewFeedbackHandler(service, logger)
}

// NewRouterFx creates the feedback router for fx DI
func NewRouterFx(handler *feedbackhttp.FeedbackHandler, logger zerolog.Logger) *feedbackhttp.Router {
	return feedbackhttp.NewRouter(handler, logger)
}

// RegisterRoutes registers feedback routes on the server
func RegisterRoutes(server *server.Server, router *feedbackhttp.Router) {
	router.RegisterRoutes(server.Router)
}
