package dispatcher

import (
	"context"

	"hr-agent/internal/catalog"
)

// UseCase turns a route and its arguments into one Data Service call.
// It never returns an error: every failure is carried in Result.
type UseCase interface {
	Dispatch(ctx context.Context, route catalog.Route, args Args) Result
}
