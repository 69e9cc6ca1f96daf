package http

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/deps"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/dto"
	newserrors "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/errors"
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

// sourcesDefaultLimit is requested by the per-publication view when no limit is given
const sourcesDefaultLimit = 20

// NewsHandler handles news HTTP requests
type NewsHandler struct {
	aggregator deps.Aggregator
	mapper     *pkgerrors.Mapper
	logger     zerolog.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(aggregator deps.Aggregator, logger zerolog.Logger) *NewsHandler {
	l := logger.With().Str("handler", "news").Logger()
	return &NewsHandler{
		aggregator: aggregator,
		mapper:     pkgerrors.NewMapper(l),
		logger:     l,
	}
}

// List handles GET /api/v1/news
func (h *NewsHandler) List(ctx *fasthttp.RequestCtx) {
	limit, err := parseLimit(ctx, 0)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	items := h.aggregator.Fetch(ctx, limit)

	httputil.WriteResponse(ctx, dto.NewsListResponse{
		Items: items,
		Count: len(items),
	})
}

// BySource handles GET /api/v1/news/sources
func (h *NewsHandler) BySource(ctx *fasthttp.RequestCtx) {
	limit, err := parseLimit(ctx, sourcesDefaultLimit)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	httputil.WriteResponse(ctx, dto.SourceGroupsResponse{
		Groups: h.aggregator.FetchBySource(ctx, limit),
	})
}

func parseLimit(ctx *fasthttp.RequestCtx, fallback int) (int, error) {
	raw := ctx.QueryArgs().Peek("limit")
	if len(raw) == 0 {
		return fallback, nil
	}

	limit, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, newserrors.ErrInvalidLimit
	}
	return limit, nil
}

func (h *NewsHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}
