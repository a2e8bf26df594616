package types

// PortAttrs holds the metadata attributes of one port as stored in the
// per-namespace config store. Alias is optional; ports without one are
// displayed under their canonical name.
type PortAttrs struct {
	Alias       string
	Role        PortRole
	Speed       string
	Description string
}

// NamespaceInfo describes one control-plane partition of the platform.
type NamespaceInfo struct {
	ID       string `yaml:"id"`
	Frontend bool   `yaml:"frontend"`
}

// Topology is the partition layout of the platform. An empty namespace
// list means a single-ASIC platform addressed directly without a
// namespace qualifier.
type Topology struct {
	Namespaces []NamespaceInfo `yaml:"namespaces"`
}

// MultiASIC reports whether the platform is partitioned into isolated
// per-ASIC namespaces.
func (t Topology) MultiASIC() bool {
	return len(t.Namespaces) > 0
}

// Has reports whether the topology contains the named namespace.
func (t Topology) Has(id string) bool {
	for _, ns := range t.Namespaces {
		if ns.ID == id {
			return true
		}
	}
	return false
}

// CapabilityDoc is the parsed shape of a platform or SKU capability
// document: a mapping from parent port name to capability attributes.
type CapabilityDoc struct {
	Interfaces map[string]map[string]any `json:"interfaces"`
}

// BreakoutConfig is the derived breakout descriptor for one parent port.
// ChildPorts and ChildSpeeds are always the same length: a declared child
// with no live operational speed is omitted from both.
type BreakoutConfig struct {
	Port        string
	CurrentMode string
	Attrs       map[string]any
	ChildPorts  []string
	ChildSpeeds []string
}

// NeighborEntry is one row of the expected-neighbor listing. Optional
// metadata fields carry the literal "None" when absent from the store.
type NeighborEntry struct {
	LocalPort    string
	Device       string
	RemotePort   string
	Loopback     string
	Mgmt         string
	NeighborType string
}

// TxErrorEntry joins a port's transmit error status from the state store
// with its statistics from the application store.
type TxErrorEntry struct {
	Port       string
	Status     string
	Statistics string
}
