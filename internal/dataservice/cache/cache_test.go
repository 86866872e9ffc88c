package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent/internal/dataservice"
	"hr-agent/internal/dataservice/cache"
	"hr-agent/pkg/log"
)

type countingService struct {
	calls int
	data  any
	err   error
}

func (c *countingService) Call(ctx context.Context, req dataservice.Request) (any, error) {
	c.calls++
	return c.data, c.err
}

func newCache(t *testing.T, next dataservice.Service) (*cache.Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return cache.New(log.NewNop(), next, rdb, 0), mr
}

func TestService_ReadThrough(t *testing.T) {
	next := &countingService{data: []map[string]any{{"id": int64(1), "name": "An"}}}
	svc, _ := newCache(t, next)
	ctx := context.Background()
	list := dataservice.Request{Entity: "employee", Op: dataservice.OpList}

	first, err := svc.Call(ctx, list)
	require.NoError(t, err)
	second, err := svc.Call(ctx, list)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, []any{map[string]any{"id": 1.0, "name": "An"}}, second)
}

func TestService_WritesInvalidate(t *testing.T) {
	next := &countingService{data: map[string]any{"ok": true}}
	svc, _ := newCache(t, next)
	ctx := context.Background()

	list := dataservice.Request{Entity: "employee", Op: dataservice.OpList}
	jobs := dataservice.Request{Entity: "job", Op: dataservice.OpList}
	stats := dataservice.Request{Entity: "dashboard", Op: dataservice.ActionOp("stats")}
	for _, r := range []dataservice.Request{list, jobs, stats} {
		_, err := svc.Call(ctx, r)
		require.NoError(t, err)
	}
	require.Equal(t, 3, next.calls)

	// A plain employee write invalidates employee lists and aggregates only.
	_, err := svc.Call(ctx, dataservice.Request{Entity: "employee", Op: dataservice.OpCreate, Values: map[string]any{"name": "Chi"}})
	require.NoError(t, err)
	next.calls = 0
	for _, r := range []dataservice.Request{list, jobs, stats} {
		_, err := svc.Call(ctx, r)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, next.calls)

	// A mutating action may touch any entity.
	_, err = svc.Call(ctx, dataservice.Request{Entity: "applicant", Op: dataservice.ActionOp("hire"), PathIDs: map[string]int64{"applicant_id": 1}})
	require.NoError(t, err)
	next.calls = 0
	for _, r := range []dataservice.Request{list, jobs, stats} {
		_, err := svc.Call(ctx, r)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, next.calls)
}

func TestService_ErrorsNotCached(t *testing.T) {
	next := &countingService{err: dataservice.ErrNotFound}
	svc, _ := newCache(t, next)
	read := dataservice.Request{Entity: "employee", Op: dataservice.OpRead, PathIDs: map[string]int64{"employee_id": 9}}

	for i := 0; i < 2; i++ {
		_, err := svc.Call(context.Background(), read)
		assert.ErrorIs(t, err, dataservice.ErrNotFound)
	}
	assert.Equal(t, 2, next.calls)
}

func TestService_RedisDownFallsThrough(t *testing.T) {
	next := &countingService{data: "fresh"}
	svc, mr := newCache(t, next)
	mr.Close()

	data, err := svc.Call(context.Background(), dataservice.Request{Entity: "employee", Op: dataservice.OpList})
	require.NoError(t, err)
	assert.Equal(t, "fresh", data)
}
