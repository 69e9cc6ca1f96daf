package alert

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	alerthttp "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert/delivery/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert/usecase/business"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http/server"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Module provides alert components for fx DI
var Module = fx.Module("alert",
	fx.Provide(NewUseCaseFx),
	fx.Provide(NewAlertHandlerFx),
	fx.Provide(NewRouterFx),
	fx.Invoke(RegisterRoutes),
)

// NewUseCaseFx creates the alert use case for fx DI
func NewUseCaseFx(generator domain.ContentGenerator, m *metrics.Metrics, logger zerolog.Logger) deps.AlertProvider {
	return business.NewUseCase(generator, m, logger)
}

// NewAlertHandlerFx creates the alert handler for fx DI
func NewAlertHandlerFx(provider deps.AlertProvider, logger zerolog.Logger) *alerthttp.AlertHandler {
	return alerthttp.NewAlertHandler(provider, logger)
}

// NewRouterFx creates the alert router for fx DI
func NewRouterFx(handler *alerthttp.AlertHandler, logger zerolog.Logger) *alerthttp.Router {
	return alerthttp.NewRouter(handler, logger)
}

// RegisterRoutes registers alert routes on the server
func RegisterRoutes(server *server.Server, router *alerthttp.Router) {
	router.RegisterRoutes(server.Router)
}
