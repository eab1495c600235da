package trajectory

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// HitKind is the kind of obstruction that ended a simulation.
type HitKind uint8

const (
	// HitNone means the projectile flew the whole step horizon unobstructed.
	HitNone HitKind = iota
	HitBlock
	HitEntity
)

func (k HitKind) String() string {
	switch k {
	case HitBlock:
		return "block"
	case HitEntity:
		return "entity"
	default:
		return "none"
	}
}

// Hit describes what a simulated projectile struck. Only the payload matching Kind is set.
type Hit struct {
	Kind HitKind
	// Point is the exact point of impact, which is always the last point of the path.
	Point mgl64.Vec3

	Block  BlockHit
	Entity EntityHit
}

// BlockHit is the payload of a Hit on static geometry.
type BlockHit struct {
	Pos cube.Pos
	// Face is the face of the struck box the projectile entered through.
	Face cube.Face
	// Box is the world space sub-box of the block's collision shape that was struck.
	Box cube.BBox
}

// EntityHit is the payload of a Hit on an entity.
type EntityHit struct {
	ID uint64
	// Box is the padded bounding box the projectile was tested against.
	Box cube.BBox
}
