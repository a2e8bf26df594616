package ports

import "portview/internal/types"

// CapabilityPort loads the two static capability documents: the full
// platform capability and the per-SKU defaults.
type CapabilityPort interface {
	LoadPlatform() (types.CapabilityDoc, error)
	LoadSKU() (types.CapabilityDoc, error)
}

// TopologyPort resolves the partition layout of the platform.
type TopologyPort interface {
	Load() (types.Topology, error)
}
