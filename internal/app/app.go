package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	healthhttp "github.com/Jimmyu2foru18/NC-Practice-Website/internal/delivery/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/alert"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/assistant"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/feedback"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/home"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain/news"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure"
)

// CreateApp creates the fx application options
func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(
			config.Out,
			context.Background,
		),
		infrastructure.Module,
		// Domain modules
		assistant.Module,
		alert.Module,
		news.Module,
		home.Module, // Must be after alert.Module and news.Module
		feedback.Module,
		healthhttp.Module,
	)
}
