package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/dto"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/entities"
	feedbackerrors "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback/errors"
	pkgerrors "github.com/Jimmyu2foru18/NC-Practice-Website/pkg/errors"
)

type mockService struct {
	submitFunc func(ctx context.Context, req *dto.SubmitFeedbackRequest) (*entities.Feedback, error)
	calls      int
}

func (m *mockService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*entities.Feedback, error) {
	m.calls++
	return m.submitFunc(ctx, req)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func post(h fasthttp.RequestHandler, body string) (*fasthttp.RequestCtx, envelope) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/api/v1/feedback")
	ctx.Request.SetBodyString(body)
	h(ctx)

	var env envelope
	_ = json.Unmarshal(ctx.Response.Body(), &env)
	return ctx, env
}

func TestFeedbackHandler_Submit(t *testing.T) {
	created := time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)
	svc := &mockService{
		submitFunc: func(ctx context.Context, req *dto.SubmitFeedbackRequest) (*entities.Feedback, error) {
			assert.Equal(t, "Taxes", req.Department)
			return &entities.Feedback{ID: 17, Status: entities.StatusReceived, CreatedAt: created}, nil
		},
	}
	h := NewFeedbackHandler(svc, zerolog.Nop())

	ctx, env := post(h.Submit, `{"first_name":"Sam","last_name":"Lee","email":"sam@example.com","department":"Taxes","message":"When is the grievance deadline?"}`)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	require.True(t, env.Success)

	var resp dto.SubmitFeedbackResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, uint(17), resp.ID)
	assert.Equal(t, "received", resp.Status)
	assert.True(t, created.Equal(resp.CreatedAt))
}

func TestFeedbackHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
		wantCalls  int
	}{
		{
			name:       "malformed body",
			body:       `not json`,
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    "invalid request body",
		},
		{
			name:       "validation",
			body:       `{}`,
			err:        pkgerrors.NewValidationError("first_name is required"),
			wantStatus: fasthttp.StatusBadRequest,
			wantMsg:    "first_name is required",
			wantCalls:  1,
		},
		{
			name:       "database",
			body:       `{}`,
			err:        feedbackerrors.ErrDatabaseOperation,
			wantStatus: fasthttp.StatusInternalServerError,
			wantMsg:    "internal server error",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				submitFunc: func(ctx context.Context, req *dto.SubmitFeedbackRequest) (*entities.Feedback, error) {
					return nil, tt.err
				},
			}
			h := NewFeedbackHandler(svc, zerolog.Nop())

			ctx, env := post(h.Submit, tt.body)

			assert.Equal(t, tt.wantStatus, ctx.Response.StatusCode())
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Error)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
