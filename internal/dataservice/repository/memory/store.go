package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hr-agent/internal/dataservice/repository"
	"hr-agent/internal/model"
)

type table struct {
	nextID int64
	rows   map[int64]map[string]any
}

// Store keeps records in process memory. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*table
}

var _ repository.Repository = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{tables: make(map[string]*table)}
}

func (s *Store) table(entity string) *table {
	t, ok := s.tables[entity]
	if !ok {
		t = &table{rows: make(map[int64]map[string]any)}
		s.tables[entity] = t
	}
	return t
}

func (s *Store) Insert(ctx context.Context, entity string, vals map[string]any) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(entity)
	t.nextID++
	row := clone(vals)
	delete(row, "id")
	t.rows[t.nextID] = row
	return record(entity, t.nextID, row), nil
}

func (s *Store) Get(ctx context.Context, entity string, id int64) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[entity]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	row, ok := t.rows[id]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	return record(entity, id, row), nil
}

func (s *Store) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[opt.Entity]
	if !ok {
		return nil, nil
	}

	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if matches(row, opt.Equals) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, record(opt.Entity, id, t.rows[id]))
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, entity string, id int64, vals map[string]any) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[entity]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	row, ok := t.rows[id]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}

	row = clone(row)
	for k, v := range vals {
		if k != "id" {
			row[k] = v
		}
	}
	t.rows[id] = row
	return record(entity, id, row), nil
}

func (s *Store) Delete(ctx context.Context, entity string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[entity]
	if !ok {
		return fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%w: %s %d", repository.ErrNotFound, entity, id)
	}
	delete(t.rows, id)
	return nil
}

func record(entity string, id int64, row map[string]any) model.Record {
	return model.Record{ID: id, Entity: entity, Vals: clone(row)}
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func matches(row map[string]any, equals map[string]any) bool {
	for k, want := range equals {
		if fmt.Sprint(row[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
