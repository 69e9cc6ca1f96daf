package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers alert HTTP routes
type Router struct {
	handler *AlertHandler
	logger  zerolog.Logger
}

// NewRouter creates a new alert router
func NewRouter(handler *AlertHandler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers alert routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/api/v1/alerts/current", r.handler.Current)

	r.logger.Info().Msg("Alert routes registered")
}
