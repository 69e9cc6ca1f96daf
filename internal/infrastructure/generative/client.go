package generative

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/domain"
)

// models is the subset of *genai.Models used by the client
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Gemini API. A Client built without a key reports
// Available() == false and never issues network calls.
type Client struct {
	models  models
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewClient creates a backend client from configuration
func NewClient(ctx context.Context, cfg *config.GenAIConfig, logger zerolog.Logger) *Client {
	c := &Client{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}

	if !cfg.HasAPIKey() {
		logger.Warn().Msg("Generative backend API key is not set, content operations will serve fallbacks")
		return c
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create generative backend client")
		return c
	}

	c.models = client.Models

	logger.Info().
		Str("model", cfg.Model).
		Dur("timeout", cfg.Timeout).
		Msg("Generative backend client initialized")

	return c
}

func newClientWithModels(m models, model string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		models:  m,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Available reports whether the backend can be called
func (c *Client) Available() bool {
	return c.models != nil
}

// Generate sends one prompt and returns the concatenated response text
func (c *Client) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	if !c.Available() {
		return "", domain.ErrBackendUnavailable
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(req.Contents), buildConfig(req))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return "", nil
	}

	return resp.Text(), nil
}

func buildConfig(req domain.GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}

	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	return cfg
}
