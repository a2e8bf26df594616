package app

import (
	"context"
	"strings"

	"portview/internal/core"
	"portview/internal/types"
)

// MPLS reports per-interface MPLS state, fanned out across the
// namespaces selected by the request scope and merged into one
// naturally-sorted listing.
func (s Service) MPLS(ctx context.Context, req MPLSRequest) (MPLSResult, error) {
	topo, err := s.Topology.Load()
	if err != nil {
		return MPLSResult{}, err
	}
	scope, display, err := core.ResolveScope(req.Namespace, types.DisplayScope(req.Display), topo)
	if err != nil {
		return MPLSResult{}, err
	}

	translator, _, err := s.translator(ctx, scope, topo)
	if err != nil {
		return MPLSResult{}, err
	}

	target := ""
	if req.Interface != "" {
		target, err = translator.AliasToName(req.Interface)
		if err != nil {
			return MPLSResult{}, err
		}
	}

	fetch := func(ctx context.Context, ns string) (map[string]core.Record, error) {
		appl, err := s.Stores.Connect(ctx, ns, types.DatabaseAppl)
		if err != nil {
			return nil, err
		}
		cfg, err := s.Stores.Connect(ctx, ns, types.DatabaseConfig)
		if err != nil {
			return nil, err
		}
		attrs, err := loadPortTable(ctx, cfg)
		if err != nil {
			return nil, err
		}
		keys, err := appl.Enumerate(ctx, intfKeyPrefix+"*")
		if err != nil {
			return nil, err
		}
		records := map[string]core.Record{}
		for _, key := range keys {
			tokens := strings.Split(key, ":")
			// Entries with address suffixes describe routes, not ports.
			if len(tokens) != 2 {
				continue
			}
			name := tokens[1]
			record, err := appl.GetRecord(ctx, key)
			if err != nil {
				return nil, err
			}
			state := record["mpls"]
			if state == "" {
				state = "disable"
			}
			records[name] = core.Record{
				Fields: map[string]string{"mpls": state},
				Class:  core.Classify(name, attrs[name]),
			}
		}
		return records, nil
	}

	rows, err := core.Aggregate(ctx, topo, fetch, core.AggregateOptions{
		Scope:      scope,
		Display:    display,
		Target:     target,
		Translator: translator,
	})
	if err != nil {
		return MPLSResult{}, err
	}

	result := MPLSResult{Rows: make([]MPLSRow, 0, len(rows))}
	for _, row := range rows {
		result.Rows = append(result.Rows, MPLSRow{Port: row.Display, State: row.Fields["mpls"]})
	}
	return result, nil
}
