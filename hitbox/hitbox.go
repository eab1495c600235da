package hitbox

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
)

// ShapeSource provides the collision shape of a block cell.
type ShapeSource interface {
	// BlockCollisions returns the boxes making up the collision shape of the cell, relative to it.
	BlockCollisions(pos cube.Pos) []cube.BBox
}

// Resolver finds the exact box a projectile struck, so that overlays can outline it tightly.
type Resolver struct {
	Shapes ShapeSource
	// Pad is the amount entity boxes and fallback block boxes are grown by.
	Pad float64
}

// New returns a Resolver reading block shapes from s with the default pad.
func New(s ShapeSource) *Resolver {
	return &Resolver{Shapes: s, Pad: game.EntityHitboxPad}
}

// Block returns the world space sub-box of the shape of the block at pos that the segment from start
// to end meets first, which is the sub-box holding start if there is one. If the segment meets none of them, the first sub-box grown by the pad is
// returned, or the full cell grown by the pad if the shape has no boxes at all.
func (r *Resolver) Block(pos cube.Pos, start, end mgl64.Vec3) cube.BBox {
	boxes := r.Shapes.BlockCollisions(pos)
	if len(boxes) == 0 {
		return game.CellBox(pos).Grow(r.Pad)
	}

	var (
		offset   = pos.Vec3()
		best     cube.BBox
		bestDist float64
		found    bool
	)
	for _, local := range boxes {
		bb := local.Translate(offset)
		point, _, ok := game.Intercept(bb, start, end)
		if !ok {
			continue
		}
		if dist := point.Sub(start).LenSqr(); !found || dist < bestDist {
			best, bestDist, found = bb, dist, true
		}
	}
	if found {
		return best
	}
	return boxes[0].Translate(offset).Grow(r.Pad)
}

// Entity returns the padded bounding box used to test projectiles against an entity.
func (r *Resolver) Entity(bb cube.BBox) cube.BBox {
	return bb.Grow(r.Pad)
}
