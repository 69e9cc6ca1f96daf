package infrastructure

import (
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/database"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/generative"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/http"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/kafka"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/logger"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/infrastructure/metrics"
)

// Module aggregates infrastructure providers
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	http.Module,
	database.Module,
	kafka.Module,
	generative.Module,
)
