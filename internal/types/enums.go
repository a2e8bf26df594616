package types

type NamingMode string

const (
	NamingModeNative NamingMode = "native"
	NamingModeAlias  NamingMode = "alias"
)

type DisplayScope string

const (
	DisplayScopeDefault  DisplayScope = ""
	DisplayScopeAll      DisplayScope = "all"
	DisplayScopeFrontend DisplayScope = "frontend"
)

type PortRole string

const (
	PortRoleExternal PortRole = "Ext"
	PortRoleInternal PortRole = "Int"
)

// Database selects which per-namespace store a handle is opened against.
type Database string

const (
	DatabaseConfig Database = "config"
	DatabaseAppl   Database = "appl"
	DatabaseState  Database = "state"
)
