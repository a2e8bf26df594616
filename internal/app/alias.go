package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/core"
	"portview/internal/types"
)

// Alias produces the interface name/alias mapping, merged across the
// namespaces selected by the request scope.
func (s Service) Alias(ctx context.Context, req AliasRequest) (AliasResult, error) {
	topo, err := s.Topology.Load()
	if err != nil {
		return AliasResult{}, err
	}
	scope, display, err := core.ResolveScope(req.Namespace, types.DisplayScope(req.Display), topo)
	if err != nil {
		return AliasResult{}, err
	}

	translator, table, err := s.translator(ctx, scope, topo)
	if err != nil {
		return AliasResult{}, err
	}

	if req.Interface != "" {
		name, err := translator.AliasToName(req.Interface)
		if err != nil {
			return AliasResult{}, err
		}
		attrs, ok := table[name]
		if !ok {
			return AliasResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("invalid interface name %s", name))
		}
		alias := attrs.Alias
		if alias == "" {
			alias = name
		}
		return AliasResult{Rows: []AliasRow{{Name: name, Alias: alias}}}, nil
	}

	var rows []AliasRow
	for _, name := range core.NaturalKeys(table) {
		attrs := table[name]
		if !core.Visible(core.Classify(name, attrs), display) {
			continue
		}
		alias := attrs.Alias
		if alias == "" {
			alias = name
		}
		rows = append(rows, AliasRow{Name: name, Alias: alias})
	}
	return AliasResult{Rows: rows}, nil
}
