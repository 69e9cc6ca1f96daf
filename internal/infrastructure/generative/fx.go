package generative

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
)

// Module provides the generative backend client for fx DI
var Module = fx.Module("generative",
	fx.Provide(NewClientFx),
	fx.Provide(provideContentGenerator),
)

// NewClientFx creates the backend client
func NewClientFx(ctx context.Context, cfg *config.GenAIConfig, logger zerolog.Logger) *Client {
	return NewClient(ctx, cfg, logger.With().Str("component", "generative").Logger())
}

func provideContentGenerator(c *Client) domain.ContentGenerator {
	return c
}
