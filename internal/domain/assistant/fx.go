package assistant

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	assistanthttp "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant/delivery/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant/usecase/business"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http/server"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Module provides assistant components for fx DI
var Module = fx.Module("assistant",
	fx.Provide(NewUseCaseFx),
	fx.Provide(NewSearchHandlerFx),
	fx.Provide(NewRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewUseCaseFx creates the assistant use case for fx DI
func NewUseCaseFx(generator domain.ContentGenerator, m *metrics.Metrics, logger zerolog.Logger) deps.Responder {
	return business.NewUseCase(generator, m, logger)
}

// NewSearchHandlerFx creates the search handler for fx DI
func NewSearchHandlerFx(responder deps.Responder, logger zerolog.Logger) *assistanthttp.SearchHandler {
	return assistanthttp.NewSearchHandler(responder, logger)
}

// NewRouterFx creates the assistant router with its rate limiter
func NewRouterFx(
	handler *assistanthttp.SearchHandler,
	searchCfg *config.SearchConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *assistanthttp.Router {
	limiter := rate.NewLimiter(rate.Limit(searchCfg.RatePerSecond), searchCfg.Burst)
	return assistanthttp.NewRouter(handler, limiter, m, logger)
}

// RegisterRoutes registers assistant routes on the server
func RegisterRoutes(server *server.Server, router *assistanthttp.Router) {
	router.RegisterRoutes(server.Router)
}
