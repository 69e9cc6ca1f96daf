package domain

import "context"

// ContentGenerator defines the generative text backend shared by the
// assistant, alert and news modules
type ContentGenerator interface {
	// Available reports whether a backend credential is configured
	Available() bool

	// Generate sends one prompt and returns the response text, which may be empty
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
