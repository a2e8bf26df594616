package app

import (
	"context"
	"strings"

	"portview/internal/ports"
	"portview/internal/types"
)

const (
	portKeyPrefix         = "PORT|"
	breakoutKeyPrefix     = "BREAKOUT_CFG|"
	neighborKeyPrefix     = "DEVICE_NEIGHBOR|"
	neighborMetaKeyPrefix = "DEVICE_NEIGHBOR_METADATA|"
	intfKeyPrefix         = "INTF_TABLE:"
	txErrStateKeyPrefix   = "TX_ERR_STATE|"
	txErrApplKeyPrefix    = "TX_ERR_APPL:"
)

func loadPortTable(ctx context.Context, store ports.StateStore) (map[string]types.PortAttrs, error) {
	keys, err := store.Enumerate(ctx, portKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	table := make(map[string]types.PortAttrs, len(keys))
	for _, key := range keys {
		record, err := store.GetRecord(ctx, key)
		if err != nil {
			return nil, err
		}
		name := strings.TrimPrefix(key, portKeyPrefix)
		table[name] = types.PortAttrs{
			Alias:       record["alias"],
			Role:        types.PortRole(record["role"]),
			Speed:       record["speed"],
			Description: record["description"],
		}
	}
	return table, nil
}

func loadBreakoutTable(ctx context.Context, store ports.StateStore) (map[string]string, error) {
	keys, err := store.Enumerate(ctx, breakoutKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	table := make(map[string]string, len(keys))
	for _, key := range keys {
		mode, ok, err := store.GetField(ctx, key, "brkout_mode")
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		table[strings.TrimPrefix(key, breakoutKeyPrefix)] = mode
	}
	return table, nil
}
