package entity

import (
	"sync"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/aimpreview/game"
)

// Category is the broad category of an entity, used to colour overlays.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryPlayer
	CategoryPassive
	CategoryHostile
)

// interpolationIncrements is the amount of ticks an entity takes to reach a newly received position.
const interpolationIncrements = 3

// Entity represents an entity the preview can collide with.
type Entity struct {
	// mu protects all the following fields.
	mu sync.Mutex
	// runtimeID is the unique ID of the entity in the world.
	runtimeID uint64
	// position is the current, interpolated position of the entity.
	position mgl32.Vec3
	// receivedPosition is the latest position received for the entity, which position moves towards.
	receivedPosition mgl32.Vec3
	// newPosRotationIncrements is used for smoothing out the position of entities.
	newPosRotationIncrements int
	// aabb represents the bounding box of the entity relative to its position.
	aabb cube.BBox
	// category is the category of the entity.
	category Category

	alive     bool
	living    bool
	spectator bool
	hittable  bool
}

// New creates a new, alive and hittable entity at the position passed. Entities of any category but
// CategoryOther are living.
func New(runtimeID uint64, position mgl32.Vec3, width, height float32, category Category) *Entity {
	return &Entity{
		runtimeID:        runtimeID,
		position:         position,
		receivedPosition: position,
		aabb:             game.AABBFromDimensions(width, height),
		category:         category,
		alive:            true,
		living:           category != CategoryOther,
		hittable:         true,
	}
}

// RuntimeID returns the runtime ID of the entity.
func (e *Entity) RuntimeID() uint64 {
	return e.runtimeID
}

// Category returns the category of the entity.
func (e *Entity) Category() Category {
	return e.category
}

// Position returns the position of the entity.
func (e *Entity) Position() mgl32.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

// BBox returns the bounding box of the entity in the world.
func (e *Entity) BBox() df_cube.BBox {
	e.mu.Lock()
	defer e.mu.Unlock()
	return game.CubeBoxToDFBox(e.aabb.Translate(e.position))
}

// Teleport moves the entity to the position passed without interpolating.
func (e *Entity) Teleport(pos mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.position = pos
	e.receivedPosition = pos
	e.newPosRotationIncrements = 0
}

// UpdatePosition sets the position the entity moves towards over the next ticks.
func (e *Entity) UpdatePosition(pos mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.receivedPosition = pos
	e.newPosRotationIncrements = interpolationIncrements
}

// Tick moves the entity a step closer to the last received position.
func (e *Entity) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.newPosRotationIncrements > 0 {
		delta := e.receivedPosition.Sub(e.position)
		e.position = e.position.Add(delta.Mul(1 / float32(e.newPosRotationIncrements)))
		e.newPosRotationIncrements--
	}
}

// Alive returns true if the entity has not died.
func (e *Entity) Alive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.alive
}

// Living returns true if the entity is a living entity, such as a mob or a player.
func (e *Entity) Living() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.living
}

// Spectator returns true if the entity is a player in spectator mode.
func (e *Entity) Spectator() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spectator
}

// Hittable returns true if projectiles can hit the entity.
func (e *Entity) Hittable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hittable
}

// SetAlive ...
func (e *Entity) SetAlive(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alive = v
}

// SetSpectator ...
func (e *Entity) SetSpectator(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spectator = v
}

// SetHittable ...
func (e *Entity) SetHittable(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hittable = v
}
