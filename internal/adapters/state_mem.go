package adapters

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/ports"
	"portview/internal/types"
)

// MemStore is an in-memory StateStore used for deterministic, store-free
// testing. Keys use the same flat layout as the real stores.
type MemStore struct {
	records map[string]map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{records: map[string]map[string]string{}}
}

// Set replaces the record at key.
func (s *MemStore) Set(key string, fields map[string]string) {
	record := make(map[string]string, len(fields))
	for f, v := range fields {
		record[f] = v
	}
	s.records[key] = record
}

func (s *MemStore) Enumerate(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var keys []string
	for key := range s.records {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid key pattern %q", pattern)).
				WithCause(err)
		}
		if ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemStore) GetField(ctx context.Context, key string, field string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	record, ok := s.records[key]
	if !ok {
		return "", false, nil
	}
	value, ok := record[field]
	return value, ok, nil
}

func (s *MemStore) GetRecord(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record := make(map[string]string, len(s.records[key]))
	for f, v := range s.records[key] {
		record[f] = v
	}
	return record, nil
}

// MemProvider hands out MemStores per namespace and database. Namespaces
// marked down refuse connections, mimicking an unreachable store.
type MemProvider struct {
	stores map[string]map[types.Database]*MemStore
	down   map[string]bool
}

func NewMemProvider() *MemProvider {
	return &MemProvider{
		stores: map[string]map[types.Database]*MemStore{},
		down:   map[string]bool{},
	}
}

// Store returns the store for a namespace and database, creating it on
// first use so tests can seed data before connecting.
func (p *MemProvider) Store(namespace string, db types.Database) *MemStore {
	byDB, ok := p.stores[namespace]
	if !ok {
		byDB = map[types.Database]*MemStore{}
		p.stores[namespace] = byDB
	}
	store, ok := byDB[db]
	if !ok {
		store = NewMemStore()
		byDB[db] = store
	}
	return store
}

// SetDown marks a namespace unreachable.
func (p *MemProvider) SetDown(namespace string) {
	p.down[namespace] = true
}

func (p *MemProvider) Connect(ctx context.Context, namespace string, db types.Database) (ports.StateStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.down[namespace] {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("store for namespace %q is unreachable", namespace))
	}
	return p.Store(namespace, db), nil
}

var _ ports.StateStore = (*MemStore)(nil)
var _ ports.StoreProvider = (*MemProvider)(nil)
