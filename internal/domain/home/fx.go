package home

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	alertdeps "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert/deps"
	homehttp "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/delivery/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/usecase/business"
	newsdeps "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http/server"
)

// Module provides home digest components for fx DI.
// Must be after alert.Module and news.Module.
var Module = fx.Module("home",
	fx.Provide(NewUseCaseFx),
	fx.Provide(NewHomeHandlerFx),
	fx.Provide(NewRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewUseCaseFx creates the home use case for fx DI
func NewUseCaseFx(
	alerts alertdeps.AlertProvider,
	news newsdeps.Aggregator,
	newsCfg *config.NewsConfig,
	logger zerolog.Logger,
) deps.Digester {
	return business.NewUseCase(alerts, news, newsCfg.HomeLimit, logger)
}

// NewHomeHandlerFx creates the home handler for fx DI
func NewHomeHandlerFx(digester deps.Digester, logger zerolog.Logger) *homehttp.HomeHandler {
	return homehttp.NewHomeHandler(digester, logger)
}

// NewRouterFx creates the home router for fx DI
func NewRouterFx(handler *homehttp.HomeHandler, logger zerolog.Logger) *homehttp.Router {
	return homehttp.NewRouter(handler, logger)
}

// RegisterRoutes registers home routes on the server
func RegisterRoutes(server *server.Server, router *homehttp.Router) {
	router.RegisterRoutes(server.Router)
}
