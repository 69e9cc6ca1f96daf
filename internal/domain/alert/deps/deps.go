package deps

import "context"

// AlertProvider produces the public safety banner text
type AlertProvider interface {
	// Current always returns a displayable alert sentence
	Current(ctx context.Context) string
}
