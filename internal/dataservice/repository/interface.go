package repository

import (
	"context"

	"hr-agent/internal/model"
)

// Repository persists HR records of every entity.
type Repository interface {
	Insert(ctx context.Context, entity string, vals map[string]any) (model.Record, error)
	Get(ctx context.Context, entity string, id int64) (model.Record, error)
	List(ctx context.Context, opt ListOptions) ([]model.Record, error)
	Update(ctx context.Context, entity string, id int64, vals map[string]any) (model.Record, error)
	Delete(ctx context.Context, entity string, id int64) error
}
