package business

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

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

func TestCurrent(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		text      string
		err       error
		want      string
		wantCalls int
	}{
		{
			name:      "no credential",
			available: false,
			want:      "No active alerts at this time.",
			wantCalls: 0,
		},
		{
			name:      "live alert",
			available: true,
			text:      "Meadowbrook Parkway northbound closed near Exit M4 due to flooding.",
			want:      "Meadowbrook Parkway northbound closed near Exit M4 due to flooding.",
			wantCalls: 1,
		},
		{
			name:      "empty text",
			available: true,
			text:      "",
			want:      "Main Street closed for maintenance until 5 PM.",
			wantCalls: 1,
		},
		{
			name:      "backend error",
			available: true,
			err:       errors.New("403 permission denied"),
			want:      "Standard Operations - No Active Alerts",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{
				available: tt.available,
				generateFunc: func(ctx context.Context, req domain.GenerateRequest) (string, error) {
					if req.Contents != alertPrompt {
						t.Errorf("unexpected prompt %q", req.Contents)
					}
					if req.SystemInstruction != "" || req.Temperature != nil || req.MaxOutputTokens != 0 || req.WebSearch {
						t.Errorf("alert request must carry no config, got %+v", req)
					}
					return tt.text, tt.err
				},
			}
			uc := NewUseCase(gen, metrics.GetDefaultMetrics(), zerolog.Nop())

			if got := uc.Current(context.Background()); got != tt.want {
				t.Errorf("Current() = %q, want %q", got, tt.want)
			}
			if gen.calls != tt.wantCalls {
				t.Errorf("expected %d backend calls, got %d", tt.wantCalls, gen.calls)
			}
		})
	}
}

func TestCurrent_UnavailableIsStable(t *testing.T) {
	uc := NewUseCase(&mockGenerator{}, metrics.GetDefaultMetrics(), zerolog.Nop())

	first := uc.Current(context.Background())
	second := uc.Current(context.Background())

	if first != second {
		t.Errorf("expected identical fallbacks, got %q and %q", first, second)
	}
}
