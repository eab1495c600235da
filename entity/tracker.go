package entity

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
)

// Tracker keeps track of the entities in a world.
type Tracker struct {
	entities map[uint64]*Entity
	deadlock.RWMutex
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{entities: make(map[uint64]*Entity)}
}

// Add starts tracking the entity passed, replacing any entity with the same runtime ID.
func (t *Tracker) Add(e *Entity) {
	t.Lock()
	defer t.Unlock()
	t.entities[e.RuntimeID()] = e
}

// Remove stops tracking the entity with the runtime ID passed.
func (t *Tracker) Remove(runtimeID uint64) {
	t.Lock()
	defer t.Unlock()
	delete(t.entities, runtimeID)
}

// Entity returns the entity with the runtime ID passed.
func (t *Tracker) Entity(runtimeID uint64) (*Entity, bool) {
	t.RLock()
	defer t.RUnlock()
	e, ok := t.entities[runtimeID]
	return e, ok
}

// Len returns the amount of entities tracked.
func (t *Tracker) Len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.entities)
}

// Tick ticks every tracked entity.
func (t *Tracker) Tick() {
	for _, e := range t.all() {
		e.Tick()
	}
}

// Intersecting returns every entity whose bounding box intersects the box passed, except the entity
// with the runtime ID exclude. The order of the entities returned is unspecified.
func (t *Tracker) Intersecting(box df_cube.BBox, exclude uint64) []*Entity {
	return lo.Filter(t.all(), func(e *Entity, _ int) bool {
		return e.RuntimeID() != exclude && e.BBox().IntersectsWith(box)
	})
}

func (t *Tracker) all() []*Entity {
	t.RLock()
	defer t.RUnlock()
	return lo.Values(t.entities)
}
