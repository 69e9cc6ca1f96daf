package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

const routeSearch = "search"

// Router registers assistant HTTP routes
type Router struct {
	handler *SearchHandler
	limiter *rate.Limiter
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewRouter creates a new assistant router
func NewRouter(handler *SearchHandler, limiter *rate.Limiter, m *metrics.Metrics, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		limiter: limiter,
		metrics: m,
		logger:  logger,
	}
}

// RegisterRoutes registers assistant routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	api := httputil.NewMiddlewareGroup(rt.Group("/api/v1")).
		Use(httputil.RateLimit(r.limiter, func(*fasthttp.RequestCtx) {
			r.metrics.RecordRateLimited(routeSearch)
		}))

	api.POST("/search", r.handler.Search)

	r.logger.Info().Msg("Assistant routes registered")
}
