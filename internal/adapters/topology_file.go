package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"portview/internal/ports"
	"portview/internal/types"
)

// TopologyFileAdapter reads the platform partition layout from a YAML
// document. A missing document means a single-ASIC platform.
type TopologyFileAdapter struct {
	Path string
}

func NewTopologyFileAdapter(path string) TopologyFileAdapter {
	return TopologyFileAdapter{Path: path}
}

func (a TopologyFileAdapter) Load() (types.Topology, error) {
	if a.Path == "" {
		return types.Topology{}, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Topology{}, nil
		}
		return types.Topology{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("topology document %s is not readable", a.Path)).
			WithCause(err)
	}
	var topo types.Topology
	if err := yaml.Unmarshal(data, &topo); err != nil {
		return types.Topology{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("invalid topology document %s", a.Path)).
			WithCause(err)
	}
	return topo, nil
}

var _ ports.TopologyPort = TopologyFileAdapter{}
