package formatter

import (
	"context"

	"hr-agent/internal/dispatcher"
)

// Formatter renders a dispatch result as a chat reply.
type Formatter interface {
	Format(ctx context.Context, routeID string, res dispatcher.Result) string
}
