package world

import (
	_ "unsafe"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/aimpreview/oerror"
)

// noinspection ALL
//
//go:linkname world_finaliseBlockRegistry github.com/df-mc/dragonfly/server/world.finaliseBlockRegistry
func world_finaliseBlockRegistry()

func init() {
	world_finaliseBlockRegistry()
}

// BlockByName returns the block with the namespaced identifier and block state properties passed,
// such as "minecraft:oak_stairs" with {"weirdo_direction": 2, "upside_down_bit": false}.
func BlockByName(name string, properties map[string]any) (world.Block, error) {
	if properties == nil {
		properties = map[string]any{}
	}
	b, ok := world.BlockByName(name, properties)
	if !ok {
		return nil, oerror.Usage("unknown block state: %s %v", name, properties)
	}
	return b, nil
}
