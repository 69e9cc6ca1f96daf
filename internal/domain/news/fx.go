package news

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	newshttp "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/delivery/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/usecase/business"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http/server"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Module provides news components for fx DI
var Module = fx.Module("news",
	fx.Provide(NewUseCaseFx),
	fx.Provide(NewNewsHandlerFx),
	fx.Provide(NewRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewUseCaseFx creates the news use case for fx DI
func NewUseCaseFx(
	generator domain.ContentGenerator,
	newsCfg *config.NewsConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.Aggregator {
	return business.NewUseCase(generator, newsCfg, m, logger)
}

// NewNewsHandlerFx creates the news handler for fx DI
func NewNewsHandlerFx(aggregator deps.Aggregator, logger zerolog.Logger) *newshttp.NewsHandler {
	return newshttp.NewNewsHandler(aggregator, logger)
}

// NewRouterFx creates the news router for fx DI
func NewRouterFx(handler *newshttp.NewsHandler, logger zerolog.Logger) *newshttp.Router {
	return newshttp.NewRouter(handler, logger)
}

// RegisterRoutes registers news routes on the server
func RegisterRoutes(server *server.Server, router *newshttp.Router) {
	router.RegisterRoutes(server.Router)
}
