package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// BlockName returns the name of the block.
func BlockName(b world.Block) string {
	n, _ := b.EncodeBlock()
	return n
}

// BlockCollisions returns the collision shape of the block at pos as boxes relative to the cell.
func (w *World) BlockCollisions(pos cube.Pos) []cube.BBox {
	b := w.Block(pos)
	if _, isAir := b.(block.Air); isAir {
		return nil
	}

	switch BlockName(b) {
	case "minecraft:portal", "minecraft:end_portal", "minecraft:web":
		return nil
	case "minecraft:bed":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 9.0/16.0, 1)}
	case "minecraft:waterlily":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1.0/64.0, 1)}
	case "minecraft:soul_sand":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 7.0/8.0, 1)}
	case "minecraft:snow_layer":
		_, dat := b.EncodeBlock()
		height, ok := dat["height"].(int32)
		if !ok {
			return nil
		}
		return []cube.BBox{cube.Box(0, 0, 0, 1, float64(height)/8.0, 1)}
	case "minecraft:golden_rail", "minecraft:detector_rail", "minecraft:activator_rail", "minecraft:rail",
		"minecraft:lever", "minecraft:redstone_wire", "minecraft:redstone_torch", "minecraft:unlit_redstone_torch":
		return nil
	case "minecraft:repeater", "minecraft:unpowered_repeater", "minecraft:powered_repeater",
		"minecraft:comparator", "minecraft:unpowered_comparator", "minecraft:powered_comparator":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1.0/8.0, 1)}
	case "minecraft:daylight_detector", "minecraft:daylight_detector_inverted":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 3.0/8.0, 1)}
	case "minecraft:flower_pot":
		return []cube.BBox{cube.Box(5/16.0, 0, 5/16.0, 11/16.0, 3/8.0, 11/16.0)}
	case "minecraft:end_portal_frame":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 13.0/16.0, 1)}
	case "minecraft:vine", "minecraft:cave_vines", "minecraft:twisting_vines", "minecraft:weeping_vines",
		"minecraft:tallgrass", "minecraft:fern", "minecraft:large_fern", "minecraft:red_mushroom", "minecraft:brown_mushroom":
		return nil
	}
	return b.Model().BBox(pos, w)
}
