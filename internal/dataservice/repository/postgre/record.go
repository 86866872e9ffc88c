package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"hr-agent/internal/dataservice/repository"
	"hr-agent/internal/model"
)

func (r *implRepository) Insert(ctx context.Context, entity string, vals map[string]any) (model.Record, error) {
	payload, err := encode(vals)
	if err != nil {
		return model.Record{}, err
	}

	query, args, err := r.sb.Insert(tableRecords).
		Columns("entity", "vals").
		Values(entity, payload).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Record{}, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		r.l.Errorf(ctx, "internal.dataservice.repository.postgre.Insert: %s: %v", entity, err)
		return model.Record{}, fmt.Errorf("insert %s: %w", entity, err)
	}

	return model.Record{ID: id, Entity: entity, Vals: withoutID(vals)}, nil
}

func (r *implRepository) Get(ctx context.Context, entity string, id int64) (model.Record, error) {
	query, args, err := r.sb.Select("id", "vals").
		From(tableRecords).
		Where(sq.Eq{"entity": entity, "id": id}).
		ToSql()
	if err != nil {
		return model.Record{}, fmt.Errorf("build select: %w", err)
	}

	rec, err := scanRecord(entity, r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Record{}, fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	return rec, err
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	b := r.sb.Select("id", "vals").
		From(tableRecords).
		Where(sq.Eq{"entity": opt.Entity}).
		OrderBy("id")

	keys := make([]string, 0, len(opt.Equals))
	for k := range opt.Equals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b = b.Where(sq.Expr("vals->>? = ?", k, fmt.Sprint(opt.Equals[k])))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", opt.Entity, err)
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		rec, err := scanRecord(opt.Entity, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, entity string, id int64, vals map[string]any) (model.Record, error) {
	payload, err := encode(vals)
	if err != nil {
		return model.Record{}, err
	}

	query, args, err := r.sb.Update(tableRecords).
		Set("vals", sq.Expr("vals || ?::jsonb", payload)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"entity": entity, "id": id}).
		Suffix("RETURNING id, vals").
		ToSql()
	if err != nil {
		return model.Record{}, fmt.Errorf("build update: %w", err)
	}

	rec, err := scanRecord(entity, r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Record{}, fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	return rec, err
}

func (r *implRepository) Delete(ctx context.Context, entity string, id int64) error {
	query, args, err := r.sb.Delete(tableRecords).
		Where(sq.Eq{"entity": entity, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", entity, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(entity string, s scanner) (model.Record, error) {
	var (
		id  int64
		raw []byte
	)
	if err := s.Scan(&id, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Record{}, err
		}
		return model.Record{}, fmt.Errorf("scan %s: %w", entity, err)
	}

	vals := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &vals); err != nil {
			return model.Record{}, fmt.Errorf("decode %s %d: %w", entity, id, err)
		}
	}
	return model.Record{ID: id, Entity: entity, Vals: vals}, nil
}

func encode(vals map[string]any) (string, error) {
	b, err := json.Marshal(withoutID(vals))
	if err != nil {
		return "", fmt.Errorf("encode vals: %w", err)
	}
	return string(b), nil
}

func withoutID(vals map[string]any) map[string]any {
	out := make(map[string]any, len(vals))
	for k, v := range vals {
		if k != "id" {
			out[k] = v
		}
	}
	return out
}
