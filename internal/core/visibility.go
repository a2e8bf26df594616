package core

import (
	"strings"

	"portview/internal/types"
)

// PortClass is the visibility classification of a port.
type PortClass int

const (
	// ClassExternal is a front-panel port with externally reachable
	// connectivity.
	ClassExternal PortClass = iota
	// ClassInternalFabric is an inter-ASIC fabric or internal
	// port-channel link.
	ClassInternalFabric
	// ClassInternalOther covers loopback, management and recycle style
	// internal ports.
	ClassInternalOther
)

// Classify determines a port's visibility from its role metadata and
// name heuristics. Loopback-style names are internal regardless of role.
func Classify(name string, attrs types.PortAttrs) PortClass {
	if strings.Contains(name, "Loopback") {
		return ClassInternalOther
	}
	if attrs.Role != types.PortRoleInternal {
		return ClassExternal
	}
	if strings.HasPrefix(name, "Ethernet") || strings.HasPrefix(name, "PortChannel") {
		return ClassInternalFabric
	}
	return ClassInternalOther
}

// Visible reports whether a port of the given class is shown under the
// requested display scope. Scope "all" disables filtering entirely.
func Visible(class PortClass, scope types.DisplayScope) bool {
	if scope == types.DisplayScopeAll {
		return true
	}
	return class == ClassExternal
}
