package profile

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/tuning"
)

const (
	// minBowPull is the pull progress below which a released arrow is not fired.
	minBowPull = 0.05

	tridentRaisePerTick   = 0.006
	tridentMaxRaise       = 0.04
	tridentForwardPerTick = 0.003
	tridentMaxForward     = 0.02

	// underhandPitch is the pitch offset, in degrees, of the arc thrown bottles are blended towards.
	underhandPitch = -20.0
	underhandBlend = 0.65

	multishotSpread = 10.0
)

// Resolver derives start positions and velocities of launch profiles from live actor state.
type Resolver struct {
	// Tuning holds the start position offsets. A nil table uses the defaults.
	Tuning *tuning.Table
	// World is used to find the point under the crosshair. If nil, the raw look direction is used.
	World Raycaster
	// AimDistance is how far the crosshair ray reaches. Zero means game.AimMaxDistance.
	AimDistance float64
}

// NewResolver returns a Resolver reading offsets from the table passed and aiming against w.
func NewResolver(t *tuning.Table, w Raycaster) *Resolver {
	return &Resolver{Tuning: t, World: w, AimDistance: game.AimMaxDistance}
}

// StartPosition returns the point the projectile of the profile leaves the actor from.
func (r *Resolver) StartPosition(p Profile, a Actor, partial float64) mgl64.Vec3 {
	if p.position == nil {
		return a.EyePosition(partial)
	}
	return p.position(r, p, a, partial)
}

// StartVelocities returns the initial velocities of the projectiles the profile launches. The slice
// may be empty, for example while a bow is barely drawn.
func (r *Resolver) StartVelocities(p Profile, a Actor, held HeldItem, partial float64) []mgl64.Vec3 {
	if p.velocities == nil {
		return nil
	}
	return p.velocities(r, p, a, held, partial)
}

func (r *Resolver) offset(g tuning.Group) tuning.Offset {
	if r.Tuning == nil {
		return defaultTuning.Get(g)
	}
	return r.Tuning.Get(g)
}

var defaultTuning = tuning.New()

// basis returns the look direction of the actor together with the right and up vectors of the view.
func basis(a Actor, partial float64) (forward, right, up mgl64.Vec3) {
	forward = a.LookDirection(partial).Normalize()
	yaw, _ := a.Rotation(partial)
	right = mgl64.Vec3{0, 1, 0}.Cross(game.HorizontalForward(yaw)).Normalize()
	up = forward.Cross(right).Normalize()
	return
}

// sideSign returns 1 when the item is launched from the right side of the body and -1 otherwise.
func sideSign(a Actor) float64 {
	hand := HandMain
	if a.UsingItem() {
		hand = a.ActiveHand()
	}
	rightArm := a.MainArm() == ArmRight
	if hand != HandMain {
		rightArm = !rightArm
	}
	if rightArm {
		return 1
	}
	return -1
}

func handTipPosition(r *Resolver, p Profile, a Actor, partial float64) mgl64.Vec3 {
	o := r.offset(p.Group)
	forward, right, up := basis(a, partial)

	return a.EyePosition(partial).
		Add(forward.Mul(o.Forward)).
		Add(right.Mul(o.Side * sideSign(a))).
		Add(up.Mul(o.Up))
}

// tridentPosition raises the trident and pushes it forward while it is wound up.
func tridentPosition(r *Resolver, p Profile, a Actor, partial float64) mgl64.Vec3 {
	base := handTipPosition(r, p, a, partial)
	forward, _, up := basis(a, partial)

	t := float64(a.UseTicks()) + partial
	raise := math.Min(tridentMaxRaise, t*tridentRaisePerTick)
	fwd := math.Min(tridentMaxForward, t*tridentForwardPerTick)

	return base.Add(up.Mul(raise)).Add(forward.Mul(fwd))
}

// aimPoint returns the first point of static geometry under the crosshair, or the far end of the
// crosshair ray if nothing is in the way. Entities are not considered.
func (r *Resolver) aimPoint(a Actor, partial float64) mgl64.Vec3 {
	dist := r.AimDistance
	if dist <= 0 {
		dist = game.AimMaxDistance
	}
	eye := a.EyePosition(partial)
	end := eye.Add(a.LookDirection(partial).Normalize().Mul(dist))

	if hit, ok := r.World.Raycast(eye, end); ok {
		return hit.Position
	}
	return end
}

// aimDirection returns the unit direction from start towards the point under the crosshair.
func (r *Resolver) aimDirection(a Actor, partial float64, start mgl64.Vec3) mgl64.Vec3 {
	look := a.LookDirection(partial).Normalize()
	if r.World == nil {
		return look
	}
	return game.NormalizeOr(r.aimPoint(a, partial).Sub(start), look)
}

// pitchedDirection returns the direction the actor would face with its pitch offset by deg degrees.
func pitchedDirection(a Actor, partial, deg float64) mgl64.Vec3 {
	yaw, pitch := a.Rotation(partial)
	return game.NormalizeOr(game.DirectionVector(yaw, pitch+deg), a.LookDirection(partial).Normalize())
}

func aimedVelocities(r *Resolver, p Profile, a Actor, _ HeldItem, partial float64) []mgl64.Vec3 {
	dir := r.aimDirection(a, partial, r.StartPosition(p, a, partial))
	return []mgl64.Vec3{dir.Mul(p.Speed).Add(a.Velocity())}
}

func bowVelocities(r *Resolver, p Profile, a Actor, _ HeldItem, partial float64) []mgl64.Vec3 {
	pull := BowPullProgress(a.UseTicks())
	if pull < minBowPull {
		return nil
	}
	dir := r.aimDirection(a, partial, r.StartPosition(p, a, partial))
	return []mgl64.Vec3{dir.Mul(p.Speed * pull).Add(a.Velocity())}
}

func crossbowVelocities(r *Resolver, p Profile, a Actor, held HeldItem, partial float64) []mgl64.Vec3 {
	dir := r.aimDirection(a, partial, r.StartPosition(p, a, partial))
	base := dir.Mul(p.Speed).Add(a.Velocity())
	if held.Multishot > 0 {
		return []mgl64.Vec3{game.RotateYaw(base, -multishotSpread), base, game.RotateYaw(base, multishotSpread)}
	}
	return []mgl64.Vec3{base}
}

// underhandVelocities blends the aim towards a raised arc, as bottles are lobbed rather than thrown.
func underhandVelocities(r *Resolver, p Profile, a Actor, _ HeldItem, partial float64) []mgl64.Vec3 {
	dir := r.aimDirection(a, partial, r.StartPosition(p, a, partial))
	dir = game.LerpVec64(dir, pitchedDirection(a, partial, underhandPitch), underhandBlend).Normalize()
	return []mgl64.Vec3{dir.Mul(p.Speed).Add(a.Velocity())}
}
