package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/core"
	"portview/internal/ports"
	"portview/internal/types"
)

// Service wires the application operations to their data sources. All
// stores are opened read-only; an invocation builds one Service, runs
// one operation and exits.
type Service struct {
	Stores     ports.StoreProvider
	Capability ports.CapabilityPort
	Topology   ports.TopologyPort
	Mode       types.NamingMode
}

func NewService(stores ports.StoreProvider, capability ports.CapabilityPort, topology ports.TopologyPort, mode types.NamingMode) Service {
	return Service{
		Stores:     stores,
		Capability: capability,
		Topology:   topology,
		Mode:       mode,
	}
}

// portTable merges the port metadata tables of every namespace selected
// by the scope. A connect failure on any required namespace is fatal.
func (s Service) portTable(ctx context.Context, scope core.NamespaceScope, topo types.Topology) (map[string]types.PortAttrs, error) {
	merged := map[string]types.PortAttrs{}
	for _, ns := range core.EnumerateNamespaces(scope, topo) {
		store, err := s.Stores.Connect(ctx, ns, types.DatabaseConfig)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("cannot connect to namespace %q", ns)).
				WithCause(err)
		}
		table, err := loadPortTable(ctx, store)
		if err != nil {
			return nil, err
		}
		for name, attrs := range table {
			merged[name] = attrs
		}
	}
	return merged, nil
}

// translator builds the alias translator for the invocation's naming
// mode over the merged port table of the given scope.
func (s Service) translator(ctx context.Context, scope core.NamespaceScope, topo types.Topology) (core.AliasTranslator, map[string]types.PortAttrs, error) {
	table, err := s.portTable(ctx, scope, topo)
	if err != nil {
		return core.AliasTranslator{}, nil, err
	}
	translator, err := core.NewAliasTranslator(s.Mode, table)
	if err != nil {
		return core.AliasTranslator{}, nil, err
	}
	return translator, table, nil
}

// ResolveInterfaceName converts a user-supplied interface identity to
// its canonical name, searching every namespace. Used by the wrapper
// commands before delegating to external utilities.
func (s Service) ResolveInterfaceName(ctx context.Context, name string) (string, error) {
	if s.Mode != types.NamingModeAlias || strings.TrimSpace(name) == "" {
		return name, nil
	}
	topo, err := s.Topology.Load()
	if err != nil {
		return "", err
	}
	translator, _, err := s.translator(ctx, core.NamespaceScope{Kind: core.ScopeAllNamespaces}, topo)
	if err != nil {
		return "", err
	}
	return translator.AliasToName(name)
}
