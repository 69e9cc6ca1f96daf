package business

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/entities"
	newsentities "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
)

type mockAlertSource struct {
	currentFunc func(ctx context.Context) string
}

func (m *mockAlertSource) Current(ctx context.Context) string {
	return m.currentFunc(ctx)
}

type mockNewsSource struct {
	fetchFunc func(ctx context.Context, limit int) []newsentities.NewsItem
}

func (m *mockNewsSource) Fetch(ctx context.Context, limit int) []newsentities.NewsItem {
	return m.fetchFunc(ctx, limit)
}

func TestDigest_CombinesBothSources(t *testing.T) {
	defer goleak.VerifyNone(t)

	var gotLimit int
	uc := NewUseCase(
		&mockAlertSource{currentFunc: func(ctx context.Context) string {
			return "No active alerts at this time."
		}},
		&mockNewsSource{fetchFunc: func(ctx context.Context, limit int) []newsentities.NewsItem {
			gotLimit = limit
			return []newsentities.NewsItem{{ID: "1", Title: "Nassau Budget Talks Continue"}}
		}},
		12,
		zerolog.Nop(),
	)

	digest := uc.Digest(context.Background())

	assert.Equal(t, "No active alerts at this time.", digest.Alert)
	require.Len(t, digest.News, 1)
	assert.Equal(t, "1", digest.News[0].ID)
	assert.Equal(t, 12, gotLimit)
}

func TestDigest_RunsConcurrently(t *testing.T) {
	defer goleak.VerifyNone(t)

	var started atomic.Int32
	bothStarted := make(chan struct{})
	arrive := func() {
		if started.Add(1) == 2 {
			close(bothStarted)
		}
	}
	wait := func() bool {
		select {
		case <-bothStarted:
			return true
		case <-time.After(2 * time.Second):
			return false
		}
	}

	uc := NewUseCase(
		&mockAlertSource{currentFunc: func(ctx context.Context) string {
			arrive()
			if !wait() {
				return "sequential"
			}
			return "concurrent"
		}},
		&mockNewsSource{fetchFunc: func(ctx context.Context, limit int) []newsentities.NewsItem {
			arrive()
			wait()
			return []newsentities.NewsItem{{ID: "x"}}
		}},
		50,
		zerolog.Nop(),
	)

	digest := uc.Digest(context.Background())

	assert.Equal(t, "concurrent", digest.Alert)
}

func TestDigest_CancelledContextLeaksNothing(t *testing.T) {
	defer goleak.VerifyNone(t)

	uc := NewUseCase(
		&mockAlertSource{currentFunc: func(ctx context.Context) string {
			<-ctx.Done()
			return "Standard Operations - No Active Alerts"
		}},
		&mockNewsSource{fetchFunc: func(ctx context.Context, limit int) []newsentities.NewsItem {
			<-ctx.Done()
			return []newsentities.NewsItem{{ID: "1"}}
		}},
		50,
		zerolog.Nop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan entities.Digest, 1)

	go func() {
		result <- uc.Digest(ctx)
	}()

	cancel()

	select {
	case d := <-result:
		assert.Equal(t, "Standard Operations - No Active Alerts", d.Alert)
		assert.Len(t, d.News, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("digest did not return after cancellation")
	}
}
