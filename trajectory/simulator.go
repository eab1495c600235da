package trajectory

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/hitbox"
)

// Request holds everything needed to simulate the flight of one projectile.
type Request struct {
	// Owner is the runtime ID of the actor launching the projectile. It is never hit.
	Owner uint64

	Start    mgl64.Vec3
	Velocity mgl64.Vec3

	Gravity  float64
	Drag     float64
	Steps    int
	StepTime float64
}

// Result is the outcome of a simulation. Points always starts with the start position of the request,
// and ends at Hit.Point if anything was hit.
type Result struct {
	Points []mgl64.Vec3
	Hit    Hit
}

// End returns the last point of the path.
func (r Result) End() mgl64.Vec3 {
	return r.Points[len(r.Points)-1]
}

// Simulator steps projectiles through a world, stopping at the first entity or block in their way.
type Simulator struct {
	World    WorldProvider
	Entities EntitySource
	Hitbox   *hitbox.Resolver
}

// New creates a Simulator over the world and entities passed. Entities may be nil, in which case only
// static geometry is tested.
func New(w WorldProvider, e EntitySource) *Simulator {
	s := &Simulator{World: w, Entities: e}
	if w != nil {
		s.Hitbox = hitbox.New(w)
	}
	return s
}

// Simulate runs the request. False is returned only if the simulator has no world to simulate in.
func (s *Simulator) Simulate(req Request) (Result, bool) {
	if s == nil || s.World == nil {
		return Result{}, false
	}
	steps := max(req.Steps, 0)

	ctx := newCtx(s, req)
	defer putCtx(ctx)

	points := make([]mgl64.Vec3, 1, steps+1)
	points[0] = req.Start

	pos, vel := req.Start, req.Velocity
	for range steps {
		next := pos.Add(vel.Mul(req.StepTime))
		if hit, ok := ctx.entityHit(pos, next); ok {
			return Result{Points: append(points, hit.Point), Hit: hit}, true
		}
		if hit, ok := ctx.blockHit(pos, next); ok {
			return Result{Points: append(points, hit.Point), Hit: hit}, true
		}

		// The velocity is only updated once the segment drawn with it is final.
		points = append(points, next)
		vel = vel.Mul(req.Drag).Sub(mgl64.Vec3{0, req.Gravity, 0})
		pos = next
	}
	return Result{Points: points}, true
}

// stepContext holds the scratch state of one simulation.
type stepContext struct {
	sim        *Simulator
	owner      uint64
	candidates []Entity
}

func (ctx *stepContext) entityHit(start, end mgl64.Vec3) (Hit, bool) {
	src := ctx.sim.Entities
	if src == nil {
		return Hit{}, false
	}

	ctx.candidates = ctx.candidates[:0]
	for _, e := range src.EntitiesIntersecting(segmentBox(start, end).Grow(game.EntitySweepMargin), ctx.owner) {
		if e == nil || e.RuntimeID() == ctx.owner {
			continue
		}
		if !e.Alive() || !e.Living() || e.Spectator() || !e.Hittable() {
			continue
		}
		ctx.candidates = append(ctx.candidates, e)
	}

	var (
		best     Hit
		bestDist = math.Inf(1)
	)
	for _, e := range ctx.candidates {
		bb := ctx.sim.entityBox(e.BBox())
		if bb.Vec3Within(start) {
			// Projectiles never hit an entity they start inside of.
			continue
		}
		res, ok := trace.BBoxIntercept(bb, start, end)
		if !ok {
			continue
		}
		if dist := res.Position().Sub(start).LenSqr(); dist < bestDist {
			bestDist = dist
			best = Hit{
				Kind:   HitEntity,
				Point:  res.Position(),
				Entity: EntityHit{ID: e.RuntimeID(), Box: bb},
			}
		}
	}
	return best, best.Kind == HitEntity
}

func (ctx *stepContext) blockHit(start, end mgl64.Vec3) (Hit, bool) {
	res, ok := ctx.sim.World.Raycast(start, end)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Kind:  HitBlock,
		Point: res.Position,
		Block: BlockHit{
			Pos:  res.Block,
			Face: res.Face,
			Box:  ctx.sim.blockBox(res.Block, start, end),
		},
	}, true
}

func (s *Simulator) entityBox(bb cube.BBox) cube.BBox {
	if s.Hitbox == nil {
		return bb.Grow(game.EntityHitboxPad)
	}
	return s.Hitbox.Entity(bb)
}

func (s *Simulator) blockBox(pos cube.Pos, start, end mgl64.Vec3) cube.BBox {
	if s.Hitbox == nil {
		return hitbox.New(s.World).Block(pos, start, end)
	}
	return s.Hitbox.Block(pos, start, end)
}

// segmentBox returns the smallest box holding both ends of a segment.
func segmentBox(start, end mgl64.Vec3) cube.BBox {
	return cube.Box(
		math.Min(start[0], end[0]), math.Min(start[1], end[1]), math.Min(start[2], end[2]),
		math.Max(start[0], end[0]), math.Max(start[1], end[1]), math.Max(start[2], end[2]),
	)
}
