package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/redis/go-redis/v9"

	"portview/internal/ports"
	"portview/internal/types"
)

// Logical database indexes inside each redis instance.
var redisIndex = map[types.Database]int{
	types.DatabaseAppl:   0,
	types.DatabaseConfig: 4,
	types.DatabaseState:  6,
}

// RedisProvider opens read-only handles onto the per-namespace redis
// instances. DefaultAddr serves direct (single-ASIC) access; Targets
// maps namespace ids to their instance addresses.
type RedisProvider struct {
	DefaultAddr string
	Targets     map[string]string
}

func NewRedisProvider(defaultAddr string, targets map[string]string) RedisProvider {
	return RedisProvider{DefaultAddr: defaultAddr, Targets: targets}
}

func (p RedisProvider) Connect(ctx context.Context, namespace string, db types.Database) (ports.StateStore, error) {
	addr := p.DefaultAddr
	if namespace != "" {
		target, ok := p.Targets[namespace]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("no store address configured for namespace %q", namespace))
		}
		addr = target
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: redisIndex[db]})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot connect to %s store at %s", db, addr)).
			WithCause(err)
	}
	return RedisStore{client: client}, nil
}

// RedisStore adapts one redis database to the StateStore port.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) RedisStore {
	return RedisStore{client: client}
}

func (s RedisStore) Enumerate(ctx context.Context, pattern string) ([]string, error) {
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("key enumeration failed for pattern %q", pattern)).
			WithCause(err)
	}
	return keys, nil
}

func (s RedisStore) GetField(ctx context.Context, key string, field string) (string, bool, error) {
	value, err := s.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("field read failed for %s/%s", key, field)).
			WithCause(err)
	}
	return value, true, nil
}

func (s RedisStore) GetRecord(ctx context.Context, key string) (map[string]string, error) {
	record, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("record read failed for %s", key)).
			WithCause(err)
	}
	return record, nil
}

var _ ports.StateStore = RedisStore{}
var _ ports.StoreProvider = RedisProvider{}
