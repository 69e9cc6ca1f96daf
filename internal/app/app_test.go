package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9093")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}

func TestCreateApp_DatabaseUnreachable(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "127.0.0.1:1")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("DATABASE_HOST", "127.0.0.1")
	t.Setenv("DATABASE_PORT", "1")

	// Content endpoints do not depend on the database
	app := fx.New(CreateApp(), fx.NopLogger)
	require.NoError(t, app.Err())
}
