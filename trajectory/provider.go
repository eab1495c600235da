package trajectory

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
)

// WorldProvider is the static geometry a projectile flies through.
type WorldProvider interface {
	// Raycast returns the first point on solid collision geometry between start and end.
	Raycast(start, end mgl64.Vec3) (game.RayHit, bool)
	// BlockCollisions returns the cell local collision boxes of the block at pos.
	BlockCollisions(pos cube.Pos) []cube.BBox
}

// Entity is a dynamic entity a projectile may strike.
type Entity interface {
	RuntimeID() uint64
	// BBox returns the world space bounding box of the entity.
	BBox() cube.BBox
	Alive() bool
	Living() bool
	Spectator() bool
	Hittable() bool
}

// EntitySource answers broad-phase entity queries.
type EntitySource interface {
	// EntitiesIntersecting returns the entities whose bounding box intersects box, leaving out the
	// entity with the runtime ID passed. The order of the entities returned is unspecified.
	EntitiesIntersecting(box cube.BBox, exclude uint64) []Entity
}
