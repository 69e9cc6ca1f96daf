package http

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant/dto"
	assistanterrors "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant/errors"
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

// SearchHandler handles assistant HTTP requests
type SearchHandler struct {
	responder deps.Responder
	mapper    *pkgerrors.Mapper
	logger    zerolog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(responder deps.Responder, logger zerolog.Logger) *SearchHandler {
	l := logger.With().Str("handler", "search").Logger()
	return &SearchHandler{
		responder: responder,
		mapper:    pkgerrors.NewMapper(l),
		logger:    l,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(ctx *fasthttp.RequestCtx) {
	var req dto.SearchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, assistanterrors.ErrInvalidBody)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		h.writeError(ctx, assistanterrors.ErrEmptyQuery)
		return
	}

	if utf8.RuneCountInString(req.Query) > assistanterrors.MaxQueryLength {
		h.writeError(ctx, assistanterrors.ErrQueryTooLong)
		return
	}

	answer := h.responder.Ask(ctx, req.Query)

	httputil.WriteResponse(ctx, dto.SearchResponse{
		Query:  req.Query,
		Answer: answer,
	})
}

func (h *SearchHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
