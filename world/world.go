package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Range is the height range of the overworld that blocks may be placed in.
var Range = cube.Range{-64, 319}

// World is an in-memory store of static geometry. Cells that were never set hold air.
type World struct {
	blocks map[cube.Pos]world.Block
	log    *logrus.Logger

	deadlock.RWMutex
}

// New returns an empty World. log may be nil.
func New(log *logrus.Logger) *World {
	return &World{
		blocks: make(map[cube.Pos]world.Block),
		log:    log,
	}
}

// SetBlock places b at pos. Placing nil or air clears the cell. Positions outside the height range of
// the overworld are ignored.
func (w *World) SetBlock(pos cube.Pos, b world.Block) {
	if pos.OutOfBounds(Range) {
		if w.log != nil {
			w.log.Debugf("ignored block placed out of bounds at %v", pos)
		}
		return
	}

	w.Lock()
	defer w.Unlock()

	if _, isAir := b.(block.Air); isAir || b == nil {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = b
	if w.log != nil {
		w.log.Debugf("placed %s at %v", BlockName(b), pos)
	}
}

// Block returns the block at the position passed.
func (w *World) Block(pos cube.Pos) world.Block {
	w.RLock()
	b, ok := w.blocks[pos]
	w.RUnlock()

	if !ok {
		return block.Air{}
	}
	return b
}

// Len returns the amount of non-air cells in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return len(w.blocks)
}

// Raycast returns the first point along the segment from start to end where it meets the collision
// shape of a block. Blocks without collision, such as liquids, plants and air, are passed through. A
// segment starting inside a collision box hits it at start.
func (w *World) Raycast(start, end mgl64.Vec3) (game.RayHit, bool) {
	for pos := range game.BlocksBetween(start, end) {
		boxes := w.BlockCollisions(pos)
		if len(boxes) == 0 {
			continue
		}

		var (
			best     game.RayHit
			bestDist float64
			found    bool
		)
		for _, bb := range boxes {
			point, face, ok := game.Intercept(bb.Translate(pos.Vec3()), start, end)
			if !ok {
				continue
			}
			if dist := point.Sub(start).LenSqr(); !found || dist < bestDist {
				best, bestDist, found = game.RayHit{Position: point, Block: pos, Face: face}, dist, true
			}
		}
		if found {
			return best, true
		}
	}
	return game.RayHit{}, false
}
