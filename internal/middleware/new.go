package middleware

import (
	"hr-agent/pkg/log"
)

// Middleware holds the shared state of the gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middlewares. rateLimitPerMin <= 0 disables rate limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	m := Middleware{l: l}
	if rateLimitPerMin > 0 {
		m.limiter = newRateLimiter(rateLimitPerMin)
	}
	return m
}
