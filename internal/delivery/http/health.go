package http

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Jimmyu2foru18/NC-Practice-Website/pkg/httputil"
)

// BackendHealthChecker reports whether the generative backend is configured
type BackendHealthChecker interface {
	Available() bool
}

// DatabaseHealthChecker verifies database reachability
type DatabaseHealthChecker interface {
	Ping(ctx context.Context) error
}

// KafkaHealthChecker wraps Kafka components to check connectivity
type KafkaHealthChecker interface {
	IsHealthy() bool
}

// HealthStatus represents the overall health status
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents health status of a single component
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentHealth `json:"components"`
}

// HealthHandler handles HTTP health check requests
type HealthHandler struct {
	backend       BackendHealthChecker
	database      DatabaseHealthChecker
	kafkaProducer KafkaHealthChecker
	timeout       time.Duration
	logger        zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(
	backend BackendHealthChecker,
	database DatabaseHealthChecker,
	kafkaProducer KafkaHealthChecker,
	logger zerolog.Logger,
) *HealthHandler {
	return &HealthHandler{
		backend:       backend,
		database:      database,
		kafkaProducer: kafkaProducer,
		timeout:       5 * time.Second,
		logger:        logger.With().Str("handler", "health").Logger(),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx *fasthttp.RequestCtx) {
	checkCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	components := h.checkComponents(checkCtx)
	status := determineOverallStatus(components)

	response := HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Components: components,
	}

	logEvent := h.logger.Debug()
	if status == HealthStatusUnhealthy {
		logEvent = h.logger.Warn()
	} else if status == HealthStatusDegraded {
		logEvent = h.logger.Info()
	}
	logEvent.
		Str("status", string(status)).
		Interface("components", components).
		Msg("Health check completed")

	// Degraded still answers 200
	httputil.WriteHealthResponse(ctx, response, status != HealthStatusUnhealthy)
}

func (h *HealthHandler) checkComponents(ctx context.Context) []ComponentHealth {
	components := make([]ComponentHealth, 0, 3)

	backend := ComponentHealth{Name: "generative_backend", Healthy: h.backend.Available()}
	if !backend.Healthy {
		backend.Message = "API key not configured, serving fallback content"
	}
	components = append(components, backend)

	database := ComponentHealth{Name: "database", Healthy: true}
	if err := h.database.Ping(ctx); err != nil {
		database.Healthy = false
		database.Message = "Database ping failed: " + err.Error()
	}
	components = append(components, database)

	producer := ComponentHealth{Name: "kafka_producer", Healthy: h.kafkaProducer.IsHealthy()}
	if !producer.Healthy {
		producer.Message = "Kafka producer is not healthy"
	}
	components = append(components, producer)

	return components
}

// determineOverallStatus determines overall health status based on component health
func determineOverallStatus(components []ComponentHealth) HealthStatus {
	allHealthy := true
	anyHealthy := false

	for _, component := range components {
		if !component.Healthy {
			allHealthy = false
		} else {
			anyHealthy = true
		}
	}

	if allHealthy {
		return HealthStatusHealthy
	} else if anyHealthy {
		return HealthStatusDegraded
	}

	return HealthStatusUnhealthy
}
