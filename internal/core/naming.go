package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/types"
)

// ResolveNamingMode maps a configuration value to a NamingMode. Anything
// other than "alias" falls back to native naming.
func ResolveNamingMode(value string) types.NamingMode {
	if strings.TrimSpace(strings.ToLower(value)) == string(types.NamingModeAlias) {
		return types.NamingModeAlias
	}
	return types.NamingModeNative
}

// AliasTranslator resolves between canonical port names and user-facing
// aliases. The mapping is fixed at construction and must be a bijection:
// a port without an alias attribute maps to its own name.
type AliasTranslator struct {
	mode        types.NamingMode
	nameToAlias map[string]string
	aliasToName map[string]string
}

// NewAliasTranslator builds a translator from the port metadata table.
// A duplicate alias makes the table unusable for reverse lookup and is
// rejected.
func NewAliasTranslator(mode types.NamingMode, portTable map[string]types.PortAttrs) (AliasTranslator, error) {
	t := AliasTranslator{
		mode:        mode,
		nameToAlias: make(map[string]string, len(portTable)),
		aliasToName: make(map[string]string, len(portTable)),
	}
	for name, attrs := range portTable {
		alias := attrs.Alias
		if alias == "" {
			alias = name
		}
		if owner, ok := t.aliasToName[alias]; ok && owner != name {
			return AliasTranslator{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("alias %s is mapped to both %s and %s", alias, owner, name))
		}
		t.nameToAlias[name] = alias
		t.aliasToName[alias] = name
	}
	return t, nil
}

func (t AliasTranslator) Mode() types.NamingMode {
	return t.mode
}

// NameToAlias returns the display identity for a canonical name. In
// native mode, or for a name with no table entry, this is the name
// itself.
func (t AliasTranslator) NameToAlias(name string) string {
	if t.mode != types.NamingModeAlias {
		return name
	}
	if alias, ok := t.nameToAlias[name]; ok {
		return alias
	}
	return name
}

// AliasToName resolves a user-supplied identity to the canonical name.
// In native mode the input is already canonical. In alias mode an alias
// with no matching port is an error; the caller must not treat the
// unresolved alias as a literal name.
func (t AliasTranslator) AliasToName(alias string) (string, error) {
	if t.mode != types.NamingModeAlias {
		return alias, nil
	}
	if name, ok := t.aliasToName[alias]; ok {
		return name, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("cannot find interface name for alias %s", alias))
}
