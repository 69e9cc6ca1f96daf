package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/dto"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

// HomeHandler serves the home page digest
type HomeHandler struct {
	digester deps.Digester
	logger   zerolog.Logger
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(digester deps.Digester, logger zerolog.Logger) *HomeHandler {
	return &HomeHandler{
		digester: digester,
		logger:   logger.With().Str("handler", "home").Logger(),
	}
}

// Digest handles GET /api/v1/home
func (h *HomeHandler) Digest(ctx *fasthttp.RequestCtx) {
	digest := h.digester.Digest(ctx)

	httputil.WriteResponse(ctx, dto.HomeResponse{
		Alert: digest.Alert,
		News:  digest.News,
	})
}
