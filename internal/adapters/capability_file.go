package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"portview/internal/ports"
	"portview/internal/types"
)

// CapabilityFileAdapter reads the two static capability documents: the
// platform port capability file and the per-SKU defaults file. Both are
// JSON mappings under an "interfaces" key.
type CapabilityFileAdapter struct {
	PlatformPath string
	SKUPath      string
}

func NewCapabilityFileAdapter(platformPath string, skuPath string) CapabilityFileAdapter {
	return CapabilityFileAdapter{PlatformPath: platformPath, SKUPath: skuPath}
}

func (a CapabilityFileAdapter) LoadPlatform() (types.CapabilityDoc, error) {
	return a.load(a.PlatformPath)
}

func (a CapabilityFileAdapter) LoadSKU() (types.CapabilityDoc, error) {
	return a.load(a.SKUPath)
}

func (a CapabilityFileAdapter) load(path string) (types.CapabilityDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CapabilityDoc{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("capability document %s is not readable", path)).
			WithCause(err)
	}
	var doc types.CapabilityDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.CapabilityDoc{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("invalid JSON in capability document %s", path)).
			WithCause(err)
	}
	return doc, nil
}

var _ ports.CapabilityPort = CapabilityFileAdapter{}
