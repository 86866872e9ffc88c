package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hr-agent/internal/dataservice"
	pkgLog "hr-agent/pkg/log"
)

const (
	defaultTTL = 5 * time.Minute
	keyPrefix  = "hr-agent:ds:"
)

// Service is a read-through redis cache in front of another Data Service.
//
// Cached replies are keyed by generation counters: a plain write bumps the
// entity generation and the aggregate epoch, a mutating action bumps the global
// epoch since it may touch several entities.
type Service struct {
	l    pkgLog.Logger
	next dataservice.Service
	rdb  *redis.Client
	ttl  time.Duration
}

var _ dataservice.Service = (*Service)(nil)

// New wraps next with a redis cache. A non-positive ttl uses the default.
func New(l pkgLog.Logger, next dataservice.Service, rdb *redis.Client, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{l: l, next: next, rdb: rdb, ttl: ttl}
}

func genKey(entity string) string { return keyPrefix + "gen:" + entity }

var (
	aggEpochKey    = keyPrefix + "epoch:agg"
	globalEpochKey = keyPrefix + "epoch:all"
)

// Call serves read-only requests from redis and invalidates on writes.
func (s *Service) Call(ctx context.Context, req dataservice.Request) (any, error) {
	if req.Op.Mutates() {
		data, err := s.next.Call(ctx, req)
		if err == nil {
			s.invalidate(ctx, req)
		}
		return data, err
	}

	key, err := s.key(ctx, req)
	if err != nil {
		s.l.Warnf(ctx, "internal.dataservice.cache.Call: key: %v", err)
		return s.next.Call(ctx, req)
	}

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var data any
		if err := json.Unmarshal(raw, &data); err == nil {
			return data, nil
		}
	case !errors.Is(err, redis.Nil):
		s.l.Warnf(ctx, "internal.dataservice.cache.Call: get %s: %v", key, err)
	}

	data, err := s.next.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON so hits and misses return the same shapes.
	raw, err = json.Marshal(data)
	if err != nil {
		return data, nil
	}
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.l.Warnf(ctx, "internal.dataservice.cache.Call: set %s: %v", key, err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return data, nil
	}
	return out, nil
}

func (s *Service) key(ctx context.Context, req dataservice.Request) (string, error) {
	scope := genKey(req.Entity)
	if req.Op.IsAction() {
		scope = aggEpochKey
	}
	vals, err := s.rdb.MGet(ctx, scope, globalEpochKey).Result()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(body)
	return fmt.Sprintf("%sv:%s:%v:%v:%s", keyPrefix, req.Entity, counter(vals[0]), counter(vals[1]), hex.EncodeToString(sum[:])), nil
}

func counter(v any) any {
	if v == nil {
		return "0"
	}
	return v
}

func (s *Service) invalidate(ctx context.Context, req dataservice.Request) {
	pipe := s.rdb.TxPipeline()
	if req.Op.IsAction() {
		pipe.Incr(ctx, globalEpochKey)
	} else {
		pipe.Incr(ctx, genKey(req.Entity))
		pipe.Incr(ctx, aggEpochKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.l.Warnf(ctx, "internal.dataservice.cache.invalidate: %s: %v", req.Entity, err)
	}
}
