package http

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/database"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/generative"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http/server"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/kafka"
)

// Module provides the health endpoint for fx DI
var Module = fx.Module("health",
	fx.Provide(NewHealthHandlerFx),
	fx.Invoke(RegisterRoutes),
)

// NewHealthHandlerFx creates the health handler for fx DI
func NewHealthHandlerFx(
	backend *generative.Client,
	pinger *database.Pinger,
	producer *kafka.Producer,
	logger zerolog.Logger,
) *HealthHandler {
	return NewHealthHandler(backend, pinger, producer, logger)
}

// RegisterRoutes registers the health route on the server
func RegisterRoutes(server *server.Server, handler *HealthHandler) {
	server.Router.GET("/health", handler.Health)
}
