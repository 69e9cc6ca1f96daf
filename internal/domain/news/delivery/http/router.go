package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers news HTTP routes
type Router struct {
	handler *NewsHandler
	logger  zerolog.Logger
}

// NewRouter creates a new news router
func NewRouter(handler *NewsHandler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers news routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/api/v1/news", r.handler.List)
	rt.GET("/api/v1/news/sources", r.handler.BySource)

	r.logger.Info().Msg("News routes registered")
}
