package app

import (
	"context"
	"strings"

	"portview/internal/core"
	"portview/internal/types"
)

const metadataDefault = "None"

// NeighborExpected lists the expected neighbor per interface from the
// device neighbor tables. Optional metadata fields default to "None";
// a neighbor whose metadata record is missing entirely is skipped.
func (s Service) NeighborExpected(ctx context.Context, req NeighborRequest) (NeighborResult, error) {
	store, err := s.Stores.Connect(ctx, "", types.DatabaseConfig)
	if err != nil {
		return NeighborResult{}, err
	}

	neighborKeys, err := store.Enumerate(ctx, neighborKeyPrefix+"*")
	if err != nil {
		return NeighborResult{}, err
	}
	if len(neighborKeys) == 0 {
		return NeighborResult{NeighborsMissing: true}, nil
	}

	metaKeys, err := store.Enumerate(ctx, neighborMetaKeyPrefix+"*")
	if err != nil {
		return NeighborResult{}, err
	}
	if len(metaKeys) == 0 {
		return NeighborResult{MetadataMissing: true}, nil
	}
	metadata := make(map[string]map[string]string, len(metaKeys))
	for _, key := range metaKeys {
		record, err := store.GetRecord(ctx, key)
		if err != nil {
			return NeighborResult{}, err
		}
		metadata[strings.TrimPrefix(key, neighborMetaKeyPrefix)] = record
	}

	topo, err := s.Topology.Load()
	if err != nil {
		return NeighborResult{}, err
	}
	translator, _, err := s.translator(ctx, core.NamespaceScope{Kind: core.ScopeAllNamespaces}, topo)
	if err != nil {
		return NeighborResult{}, err
	}

	target := ""
	if req.Interface != "" {
		target, err = translator.AliasToName(req.Interface)
		if err != nil {
			return NeighborResult{}, err
		}
	}

	neighbors := make(map[string]map[string]string, len(neighborKeys))
	for _, key := range neighborKeys {
		record, err := store.GetRecord(ctx, key)
		if err != nil {
			return NeighborResult{}, err
		}
		neighbors[strings.TrimPrefix(key, neighborKeyPrefix)] = record
	}

	var rows []types.NeighborEntry
	for _, port := range core.NaturalKeys(neighbors) {
		if target != "" && port != target {
			continue
		}
		record := neighbors[port]
		device := record["name"]
		md, ok := metadata[device]
		if device == "" || !ok {
			continue
		}
		rows = append(rows, types.NeighborEntry{
			LocalPort:    translator.NameToAlias(port),
			Device:       device,
			RemotePort:   record["port"],
			Loopback:     metadataField(md, "lo_addr"),
			Mgmt:         metadataField(md, "mgmt_addr"),
			NeighborType: metadataField(md, "type"),
		})
	}
	if target != "" && len(rows) == 0 {
		return NeighborResult{NotFound: true}, nil
	}
	return NeighborResult{Rows: rows}, nil
}

func metadataField(record map[string]string, field string) string {
	if value, ok := record[field]; ok && value != "" {
		return value
	}
	return metadataDefault
}
