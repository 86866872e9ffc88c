package postgre

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"hr-agent/internal/dataservice/repository"
	pkgLog "hr-agent/pkg/log"
)

const tableRecords = "hr_records"

// Schema creates the single generic records table.
const Schema = `CREATE TABLE IF NOT EXISTS hr_records (
    id         BIGSERIAL PRIMARY KEY,
    entity     TEXT        NOT NULL,
    vals       JSONB       NOT NULL DEFAULT '{}'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS hr_records_entity_idx ON hr_records (entity, id);`

type implRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Postgres-backed repository over hr_records.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		l:  l,
	}
}

// Migrate creates hr_records when it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate %s: %w", tableRecords, err)
	}
	return nil
}
