package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert/dto"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

// AlertHandler handles safety alert HTTP requests
type AlertHandler struct {
	provider deps.AlertProvider
	logger   zerolog.Logger
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(provider deps.AlertProvider, logger zerolog.Logger) *AlertHandler {
	return &AlertHandler{
		provider: provider,
		logger:   logger.With().Str("handler", "alert").Logger(),
	}
}

// Current handles GET /api/v1/alerts/current
func (h *AlertHandler) Current(ctx *fasthttp.RequestCtx) {
	httputil.WriteResponse(ctx, dto.AlertResponse{
		Alert: h.provider.Current(ctx),
	})
}
