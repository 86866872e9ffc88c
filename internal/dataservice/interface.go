package dataservice

import "context"

// Service is the Data Service contract: one operation on one entity.
// A returned error is the backend's failure message, passed through unchanged.
type Service interface {
	Call(ctx context.Context, req Request) (any, error)
}
