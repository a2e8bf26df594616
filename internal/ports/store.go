package ports

import (
	"context"

	"portview/internal/types"
)

// StateStore is a read-only handle onto one database of one namespace.
// Keys are flat strings ("PORT|Ethernet0", "INTF_TABLE:Ethernet0") and
// records are field/value hashes.
type StateStore interface {
	// Enumerate returns the keys matching a glob-style pattern.
	Enumerate(ctx context.Context, pattern string) ([]string, error)
	// GetField returns one field of a record. The boolean is false when
	// the field or the record does not exist.
	GetField(ctx context.Context, key string, field string) (string, bool, error)
	// GetRecord returns all fields of a record; an absent record yields
	// an empty map.
	GetRecord(ctx context.Context, key string) (map[string]string, error)
}

// StoreProvider opens store handles per namespace. An empty namespace id
// addresses the single-ASIC (direct) instance.
type StoreProvider interface {
	Connect(ctx context.Context, namespace string, db types.Database) (StateStore, error)
}
