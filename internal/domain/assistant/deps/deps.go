package deps

import "context"

// Responder answers resident questions about the county website
type Responder interface {
	// Ask always returns a displayable answer, falling back to fixed text on failure
	Ask(ctx context.Context, query string) string
}
