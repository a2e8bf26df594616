package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portview/internal/types"
)

func multiASICTopology() types.Topology {
	return types.Topology{Namespaces: []types.NamespaceInfo{
		{ID: "asic0", Frontend: true},
		{ID: "asic1", Frontend: true},
		{ID: "asic2", Frontend: false},
	}}
}

func TestResolveScopeSingleASICForcesDirect(t *testing.T) {
	scope, display, err := ResolveScope("", types.DisplayScopeDefault, types.Topology{})
	require.NoError(t, err)
	assert.Equal(t, ScopeNative, scope.Kind)
	assert.Equal(t, types.DisplayScopeFrontend, display)

	scope, display, err = ResolveScope("", types.DisplayScopeFrontend, types.Topology{})
	require.NoError(t, err)
	assert.Equal(t, ScopeNative, scope.Kind)
	assert.Equal(t, types.DisplayScopeFrontend, display)
}

func TestResolveScopeSingleASICExplicitAll(t *testing.T) {
	scope, display, err := ResolveScope("", types.DisplayScopeAll, types.Topology{})
	require.NoError(t, err)
	assert.Equal(t, ScopeNative, scope.Kind)
	assert.Equal(t, types.DisplayScopeAll, display)
}

func TestResolveScopeSingleASICRejectsNamespace(t *testing.T) {
	// The failure happens before any store connection is attempted.
	_, _, err := ResolveScope("asic0", types.DisplayScopeDefault, types.Topology{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestResolveScopeInvalidDisplay(t *testing.T) {
	_, _, err := ResolveScope("", types.DisplayScope("sideways"), multiASICTopology())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestResolveScopeMultiASIC(t *testing.T) {
	topo := multiASICTopology()

	scope, display, err := ResolveScope("", types.DisplayScopeDefault, topo)
	require.NoError(t, err)
	assert.Equal(t, ScopeFrontendOnly, scope.Kind)
	assert.Equal(t, types.DisplayScopeFrontend, display)

	scope, display, err = ResolveScope("", types.DisplayScopeAll, topo)
	require.NoError(t, err)
	assert.Equal(t, ScopeAllNamespaces, scope.Kind)
	assert.Equal(t, types.DisplayScopeAll, display)

	scope, _, err = ResolveScope("asic1", types.DisplayScopeDefault, topo)
	require.NoError(t, err)
	assert.Equal(t, ScopeExplicit, scope.Kind)
	assert.Equal(t, "asic1", scope.Namespace)
}

func TestResolveScopeUnknownNamespace(t *testing.T) {
	_, _, err := ResolveScope("asic9", types.DisplayScopeDefault, multiASICTopology())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestEnumerateNamespaces(t *testing.T) {
	topo := multiASICTopology()

	assert.Equal(t, []string{""}, EnumerateNamespaces(NamespaceScope{Kind: ScopeNative}, types.Topology{}))
	assert.Equal(t, []string{"asic0", "asic1", "asic2"},
		EnumerateNamespaces(NamespaceScope{Kind: ScopeAllNamespaces}, topo))
	assert.Equal(t, []string{"asic0", "asic1"},
		EnumerateNamespaces(NamespaceScope{Kind: ScopeFrontendOnly}, topo))
	assert.Equal(t, []string{"asic2"},
		EnumerateNamespaces(NamespaceScope{Kind: ScopeExplicit, Namespace: "asic2"}, topo))
}
