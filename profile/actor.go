package profile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
)

// Actor is the live state of the player a launch profile is resolved for. Methods taking partial
// interpolate between the previous and current tick by the fraction passed, in [0, 1).
type Actor interface {
	EyePosition(partial float64) mgl64.Vec3
	LookDirection(partial float64) mgl64.Vec3
	// Rotation returns the yaw and pitch in degrees.
	Rotation(partial float64) (yaw, pitch float64)
	Velocity() mgl64.Vec3

	UsingItem() bool
	// UseTicks is the amount of ticks the item in use has been used for.
	UseTicks() int
	ActiveHand() Hand
	MainArm() Arm
}

// Raycaster tests a segment against solid static geometry only.
type Raycaster interface {
	Raycast(start, end mgl64.Vec3) (game.RayHit, bool)
}
