package deps

import (
	"context"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home/entities"
	newsentities "github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news/entities"
)

// AlertSource provides the banner alert
type AlertSource interface {
	Current(ctx context.Context) string
}

// NewsSource provides recent news
type NewsSource interface {
	Fetch(ctx context.Context, limit int) []newsentities.NewsItem
}

// Digester assembles the home page digest
type Digester interface {
	// Digest fetches the alert and the news concurrently
	Digest(ctx context.Context) entities.Digest
}
