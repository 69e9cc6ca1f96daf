package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers home HTTP routes
type Router struct {
	handler *HomeHandler
	logger  zerolog.Logger
}

// NewRouter creates a new home router
func NewRouter(handler *HomeHandler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers home routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/api/v1/home", r.handler.Digest)

	r.logger.Info().Msg("Home routes registered")
}
