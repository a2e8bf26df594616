package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/types"
)

// ScopeKind selects which namespaces an operation queries.
type ScopeKind int

const (
	// ScopeNative is the default: direct access on single-ASIC, the
	// frontend namespaces on multi-ASIC.
	ScopeNative ScopeKind = iota
	ScopeFrontendOnly
	ScopeAllNamespaces
	ScopeExplicit
)

// NamespaceScope is the resolved namespace selection for one invocation.
type NamespaceScope struct {
	Kind      ScopeKind
	Namespace string
}

// ResolveScope validates the namespace and display options against the
// platform topology and resolves them into a namespace scope and a
// display scope. Incompatible options fail here, before any store
// connection is attempted.
func ResolveScope(namespace string, display types.DisplayScope, topo types.Topology) (NamespaceScope, types.DisplayScope, error) {
	switch display {
	case types.DisplayScopeDefault, types.DisplayScopeAll, types.DisplayScopeFrontend:
	default:
		return NamespaceScope{}, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid display option %q, expected all or frontend", display))
	}

	if !topo.MultiASIC() {
		if namespace != "" {
			return NamespaceScope{}, "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("namespace option is not valid on a single-ASIC platform")
		}
		// Direct access, but internal ports such as loopbacks stay
		// hidden unless "all" was asked for.
		if display == types.DisplayScopeDefault {
			display = types.DisplayScopeFrontend
		}
		return NamespaceScope{Kind: ScopeNative}, display, nil
	}

	if namespace != "" {
		if !topo.Has(namespace) {
			return NamespaceScope{}, "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unknown namespace %s", namespace))
		}
		if display == types.DisplayScopeDefault {
			display = types.DisplayScopeFrontend
		}
		return NamespaceScope{Kind: ScopeExplicit, Namespace: namespace}, display, nil
	}

	switch display {
	case types.DisplayScopeAll:
		return NamespaceScope{Kind: ScopeAllNamespaces}, display, nil
	case types.DisplayScopeFrontend, types.DisplayScopeDefault:
		return NamespaceScope{Kind: ScopeFrontendOnly}, types.DisplayScopeFrontend, nil
	}
	return NamespaceScope{Kind: ScopeNative}, display, nil
}

// EnumerateNamespaces expands a resolved scope into the ordered list of
// namespace ids to query. Single-ASIC platforms yield one empty id,
// meaning direct access.
func EnumerateNamespaces(scope NamespaceScope, topo types.Topology) []string {
	if !topo.MultiASIC() {
		return []string{""}
	}
	switch scope.Kind {
	case ScopeExplicit:
		return []string{scope.Namespace}
	case ScopeAllNamespaces:
		ids := make([]string, 0, len(topo.Namespaces))
		for _, ns := range topo.Namespaces {
			ids = append(ids, ns.ID)
		}
		return ids
	default:
		ids := make([]string, 0, len(topo.Namespaces))
		for _, ns := range topo.Namespaces {
			if ns.Frontend {
				ids = append(ids, ns.ID)
			}
		}
		return ids
	}
}
