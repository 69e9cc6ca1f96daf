package http

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/dto"
	feedbackerrors "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/errors"
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

// FeedbackHandler handles contact form HTTP requests
type FeedbackHandler struct {
	service deps.FeedbackService
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service deps.FeedbackService, logger zerolog.Logger) *FeedbackHandler {
	l := logger.With().Str("handler", "feedback").Logger()
	return &FeedbackHandler{
		service: service,
		mapper:  pkgerrors.NewMapper(l),
		logger:  l,
	}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(ctx *fasthttp.RequestCtx) {
	var req dto.SubmitFeedbackRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, feedbackerrors.ErrInvalidBody)
		return
	}

	feedback, err := h.service.Submit(ctx, &req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponseWithStatus(ctx, dto.SubmitFeedbackResponse{
		ID:        feedback.ID,
		Status:    feedback.Status,
		CreatedAt: feedback.CreatedAt,
	}, fasthttp.StatusCreated)
}

func (h *FeedbackHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
