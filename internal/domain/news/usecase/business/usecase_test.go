package business

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// mockGenerator is a mock implementation of domain.ContentGenerator
type mockGenerator struct {
	available    bool
	generateFunc func(ctx context.Context, req domain.GenerateRequest) (string, error)
	calls        int
}

func (m *mockGenerator) Available() bool {
	return m.available
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return "", nil
}

func respondWith(text string, err error) *mockGenerator {
	return &mockGenerator{
		available: true,
		generateFunc: func(ctx context.Context, req domain.GenerateRequest) (string, error) {
			return text, err
		},
	}
}

func newTestUseCase(gen *mockGenerator) *UseCase {
	uc := NewUseCase(gen, &config.NewsConfig{DefaultLimit: 50, HomeLimit: 50}, metrics.GetDefaultMetrics(), zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func generatedArray(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id":"live-%d","title":"Story %d","source":"Patch"}`, i, i)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestFetch_NoCredentialIgnoresLimit(t *testing.T) {
	gen := &mockGenerator{available: false}
	uc := newTestUseCase(gen)

	items := uc.Fetch(context.Background(), 5)

	assert.Equal(t, FallbackNews(fixedNow), items)
	assert.Len(t, items, 8)
	assert.Zero(t, gen.calls)
}

func TestFetch_LiveRequest(t *testing.T) {
	var got domain.GenerateRequest
	gen := &mockGenerator{
		available: true,
		generateFunc: func(ctx context.Context, req domain.GenerateRequest) (string, error) {
			got = req
			return `[{"id":"n12-1","title":"LIRR Delays","source":"News 12 Long Island"}]`, nil
		},
	}
	uc := newTestUseCase(gen)

	items := uc.Fetch(context.Background(), 0)

	require.Len(t, items, 1)
	assert.Equal(t, "n12-1", items[0].ID)
	assert.True(t, got.WebSearch)
	assert.Equal(t, buildPrompt(fixedNow), got.Contents)
	assert.Empty(t, got.SystemInstruction)
	assert.Nil(t, got.Temperature)
}

func TestFetch_CodeFencedResponse(t *testing.T) {
	uc := newTestUseCase(respondWith("Here you go:\n```json\n[{\"title\":\"X\"}]\n```", nil))

	items := uc.Fetch(context.Background(), 10)

	require.Len(t, items, 1)
	assert.Equal(t, "X", items[0].Title)
	assert.Equal(t, "gen-0-1762178709000", items[0].ID)
	assert.Equal(t, "Nassau News", items[0].Source)
	assert.Equal(t, "General", items[0].Category)
	assert.Equal(t, "#", items[0].URL)
}

func TestFetch_FallbackPaths(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "backend error", err: errors.New("context deadline exceeded")},
		{name: "empty text", text: ""},
		{name: "empty array", text: "Nothing found: []"},
		{name: "prose", text: "I could not find any news."},
		{name: "malformed json", text: `[{"title": "broken",}]`},
		{name: "object instead of array", text: `{"items": "none"}`},
		{name: "null element", text: `[null, {"title": "A"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(respondWith(tt.text, tt.err))

			items := uc.Fetch(context.Background(), 3)

			assert.Equal(t, FallbackNews(fixedNow), items)
		})
	}
}

func TestFetch_LimitCapsLiveItems(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		total int
		want  int
	}{
		{name: "under limit", limit: 10, total: 4, want: 4},
		{name: "over limit", limit: 3, total: 12, want: 3},
		{name: "default limit", limit: 0, total: 60, want: 50},
		{name: "negative limit", limit: -1, total: 60, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(respondWith(generatedArray(tt.total), nil))

			items := uc.Fetch(context.Background(), tt.limit)

			require.Len(t, items, tt.want)
			assert.Equal(t, "live-0", items[0].ID)
		})
	}
}

func TestFetch_NeverEmpty(t *testing.T) {
	for _, gen := range []*mockGenerator{
		{available: false},
		respondWith("", nil),
		respondWith("[]", nil),
		respondWith("", errors.New("boom")),
	} {
		assert.NotEmpty(t, newTestUseCase(gen).Fetch(context.Background(), 1))
	}
}

func TestFetchBySource(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{available: false})

	groups := uc.FetchBySource(context.Background(), 20)

	require.NotEmpty(t, groups)
	assert.Equal(t, "News 12 Long Island", groups[0].Source)
	assert.Equal(t, "Patch", groups[len(groups)-1].Source)
}
