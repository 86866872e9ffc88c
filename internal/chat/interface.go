package chat

import "context"

// UseCase answers free-text HR requests.
type UseCase interface {
	// Handle routes the message, runs the matched operation and renders the reply.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)

	// Suggestions returns example messages the router understands.
	Suggestions(ctx context.Context) []string

	// Help returns the usage text.
	Help(ctx context.Context) string
}
