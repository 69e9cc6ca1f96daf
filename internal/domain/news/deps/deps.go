package deps

import (
	"context"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
)

// Aggregator defines news aggregation operations
type Aggregator interface {
	// Fetch returns recent county news. The result is never empty.
	Fetch(ctx context.Context, limit int) []entities.NewsItem

	// FetchBySource returns recent news grouped per partner publication
	FetchBySource(ctx context.Context, limit int) []entities.SourceGroup
}
