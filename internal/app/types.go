package app

import "portview/internal/types"

type AliasRequest struct {
	Interface string
	Namespace string
	Display   string
}

type AliasRow struct {
	Name  string
	Alias string
}

type AliasResult struct {
	Rows []AliasRow
}

type MPLSRequest struct {
	Interface string
	Namespace string
	Display   string
}

type MPLSRow struct {
	Port  string
	State string
}

type MPLSResult struct {
	Rows []MPLSRow
}

type BreakoutResult struct {
	// TableMissing is set when the persisted breakout table is absent:
	// no data to show, not a failure.
	TableMissing bool
	Configs      []types.BreakoutConfig
}

type CurrentModeRequest struct {
	Interface string
}

type CurrentModeRow struct {
	Port string
	Mode string
}

type CurrentModeResult struct {
	TableMissing bool
	Rows         []CurrentModeRow
}

type NeighborRequest struct {
	Interface string
}

type NeighborResult struct {
	NeighborsMissing bool
	MetadataMissing  bool
	// NotFound is set when a requested interface has no neighbor entry;
	// reported as a message, not a failure.
	NotFound bool
	Rows     []types.NeighborEntry
}

type TxErrorRequest struct {
	Interface string
}

type TxErrorResult struct {
	Rows []types.TxErrorEntry
}
