package app

import (
	"context"

	"portview/internal/core"
	"portview/internal/types"
)

// Breakout derives the full breakout topology: platform capability and
// SKU default documents, the persisted current-breakout table and live
// child port speeds merged into one descriptor per parent port.
func (s Service) Breakout(ctx context.Context) (BreakoutResult, error) {
	store, err := s.Stores.Connect(ctx, "", types.DatabaseConfig)
	if err != nil {
		return BreakoutResult{}, err
	}
	currentModes, err := loadBreakoutTable(ctx, store)
	if err != nil {
		return BreakoutResult{}, err
	}
	if len(currentModes) == 0 {
		return BreakoutResult{TableMissing: true}, nil
	}

	platform, err := s.Capability.LoadPlatform()
	if err != nil {
		return BreakoutResult{}, err
	}
	sku, err := s.Capability.LoadSKU()
	if err != nil {
		return BreakoutResult{}, err
	}

	configs, err := core.ResolveBreakout(core.BreakoutInputs{
		PlatformCaps: platform.Interfaces,
		SKUDefaults:  sku.Interfaces,
		CurrentModes: currentModes,
		LiveSpeed: func(port string) (string, bool) {
			speed, ok, err := store.GetField(ctx, portKeyPrefix+port, "speed")
			if err != nil || !ok {
				return "", false
			}
			return speed, true
		},
	})
	if err != nil {
		return BreakoutResult{}, err
	}
	return BreakoutResult{Configs: configs}, nil
}

// CurrentMode reports the applied breakout mode per parent port from the
// persisted table, or "Not Available" for a port the table does not
// cover.
func (s Service) CurrentMode(ctx context.Context, req CurrentModeRequest) (CurrentModeResult, error) {
	store, err := s.Stores.Connect(ctx, "", types.DatabaseConfig)
	if err != nil {
		return CurrentModeResult{}, err
	}
	table, err := loadBreakoutTable(ctx, store)
	if err != nil {
		return CurrentModeResult{}, err
	}
	if len(table) == 0 {
		return CurrentModeResult{TableMissing: true}, nil
	}

	if req.Interface != "" {
		mode, ok := table[req.Interface]
		if !ok {
			mode = "Not Available"
		}
		return CurrentModeResult{Rows: []CurrentModeRow{{Port: req.Interface, Mode: mode}}}, nil
	}

	result := CurrentModeResult{Rows: make([]CurrentModeRow, 0, len(table))}
	for _, port := range core.NaturalKeys(table) {
		result.Rows = append(result.Rows, CurrentModeRow{Port: port, Mode: table[port]})
	}
	return result, nil
}
