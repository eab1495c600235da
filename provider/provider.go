package provider

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/aimpreview/entity"
	"github.com/oomph-ac/aimpreview/profile"
	"github.com/oomph-ac/aimpreview/trajectory"
	"github.com/oomph-ac/aimpreview/world"
	"github.com/samber/lo"
)

var (
	_ trajectory.WorldProvider = (*world.World)(nil)
	_ trajectory.Entity        = (*entity.Entity)(nil)
	_ trajectory.EntitySource  = Entities{}
	_ profile.Raycaster        = (*world.World)(nil)
)

// Entities exposes the entities of a tracker to the trajectory simulator.
type Entities struct {
	Tracker *entity.Tracker
}

// EntitiesIntersecting ...
func (e Entities) EntitiesIntersecting(box cube.BBox, exclude uint64) []trajectory.Entity {
	if e.Tracker == nil {
		return nil
	}
	return lo.Map(e.Tracker.Intersecting(box, exclude), func(en *entity.Entity, _ int) trajectory.Entity {
		return en
	})
}

// Scene is the static geometry and entities surrounding a player.
type Scene struct {
	World    *world.World
	Entities *entity.Tracker
}

// Simulator returns a trajectory simulator for the scene. A scene without a world yields a simulator
// that never simulates anything.
func (s Scene) Simulator() *trajectory.Simulator {
	if s.World == nil {
		return trajectory.New(nil, nil)
	}
	var src trajectory.EntitySource
	if s.Entities != nil {
		src = Entities{Tracker: s.Entities}
	}
	return trajectory.New(s.World, src)
}

// Raycaster returns the static geometry the crosshair of the player is aimed against, or nil if the
// scene has no world.
func (s Scene) Raycaster() profile.Raycaster {
	if s.World == nil {
		return nil
	}
	return s.World
}
