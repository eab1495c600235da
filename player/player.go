package player

import (
	"math"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/profile"
	"github.com/sasha-s/go-deadlock"
)

// Player is the local state of the player a projectile path is previewed for. Positions and
// rotations are kept for the current and previous tick so that they can be interpolated per frame.
type Player struct {
	runtimeID uint64

	// pos and lastPos are the positions of the feet of the player.
	pos, lastPos mgl32.Vec3
	// rotation and lastRotation hold the pitch, head yaw and yaw of the player.
	rotation, lastRotation mgl32.Vec3
	vel                    mgl32.Vec3
	sneaking               bool

	mainHand, offHand item.Stack
	crossbowCharged   bool

	usingItem  bool
	activeHand profile.Hand
	useTicks   int
	mainArm    profile.Arm

	deadlock.RWMutex
}

// New creates a Player with the runtime ID passed, standing at the origin.
func New(runtimeID uint64) *Player {
	return &Player{runtimeID: runtimeID}
}

// RuntimeID returns the runtime ID of the player. Projectiles launched by the player never hit it.
func (p *Player) RuntimeID() uint64 {
	return p.runtimeID
}

// Move moves the player to a new position and rotation for the next tick. The previous state is kept
// for interpolation.
func (p *Player) Move(pos mgl32.Vec3, yaw, pitch float32) {
	p.Lock()
	defer p.Unlock()

	p.lastPos = p.pos
	p.pos = pos
	p.lastRotation = p.rotation
	p.rotation = mgl32.Vec3{pitch, yaw, yaw}
}

// Teleport moves the player without interpolating from its previous position.
func (p *Player) Teleport(pos mgl32.Vec3, yaw, pitch float32) {
	p.Lock()
	defer p.Unlock()

	p.pos, p.lastPos = pos, pos
	p.rotation = mgl32.Vec3{pitch, yaw, yaw}
	p.lastRotation = p.rotation
}

// Position returns the current position of the feet of the player.
func (p *Player) Position() mgl32.Vec3 {
	p.RLock()
	defer p.RUnlock()
	return p.pos
}

// SetVelocity sets the velocity of the player, which launched projectiles inherit.
func (p *Player) SetVelocity(vel mgl32.Vec3) {
	p.Lock()
	p.vel = vel
	p.Unlock()
}

// Velocity ...
func (p *Player) Velocity() mgl64.Vec3 {
	p.RLock()
	defer p.RUnlock()
	return game.Vec32To64(p.vel)
}

// SetSneaking updates whether the player is sneaking, which lowers its eyes.
func (p *Player) SetSneaking(sneaking bool) {
	p.Lock()
	p.sneaking = sneaking
	p.Unlock()
}

// Sneaking ...
func (p *Player) Sneaking() bool {
	p.RLock()
	defer p.RUnlock()
	return p.sneaking
}

func (p *Player) eyeHeight() float64 {
	if p.sneaking {
		return game.SneakingPlayerHeightOffset
	}
	return game.DefaultPlayerHeightOffset
}

// EyePosition returns the position of the eyes of the player, interpolated between the previous and
// current tick.
func (p *Player) EyePosition(partial float64) mgl64.Vec3 {
	p.RLock()
	defer p.RUnlock()

	pos := game.LerpVec64(game.Vec32To64(p.lastPos), game.Vec32To64(p.pos), partial)
	return pos.Add(mgl64.Vec3{0, p.eyeHeight(), 0})
}

// Rotation returns the yaw and pitch of the player, interpolated between the previous and current
// tick. Yaw is interpolated along the shortest arc.
func (p *Player) Rotation(partial float64) (yaw, pitch float64) {
	p.RLock()
	defer p.RUnlock()

	lastYaw, curYaw := float64(p.lastRotation.Z()), float64(p.rotation.Z())
	yaw = lastYaw + wrapDegrees(curYaw-lastYaw)*partial
	pitch = game.Lerp64(float64(p.lastRotation.X()), float64(p.rotation.X()), partial)
	return
}

// LookDirection returns the unit vector the player is looking along.
func (p *Player) LookDirection(partial float64) mgl64.Vec3 {
	return game.DirectionVector(p.Rotation(partial))
}

// SetMainArm sets the arm the player uses as its main hand.
func (p *Player) SetMainArm(arm profile.Arm) {
	p.Lock()
	p.mainArm = arm
	p.Unlock()
}

// MainArm ...
func (p *Player) MainArm() profile.Arm {
	p.RLock()
	defer p.RUnlock()
	return p.mainArm
}

// wrapDegrees wraps an angle in degrees to [-180, 180).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg+180, 360)
	if deg < 0 {
		deg += 360
	}
	return deg - 180
}
