package extractor

import (
	"context"

	"hr-agent/internal/catalog"
	"hr-agent/internal/dispatcher"
)

// Extractor turns an utterance into arguments for a route.
type Extractor interface {
	Extract(ctx context.Context, text string, route catalog.Route) dispatcher.Args
}
