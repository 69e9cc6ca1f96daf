package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers feedback HTTP routes
type Router struct {
	handler *FeedbackHandler
	logger  zerolog.Logger
}

// NewRouter creates a new feedback router
func NewRouter(handler *FeedbackHandler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers feedback routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.POST("/api/v1/feedback", r.handler.Submit)

	r.logger.Info().Msg("Feedback routes registered")
}
