package game

const (
	// EntityHitboxPad is the amount entity bounding boxes are grown by before a projectile path is
	// tested against them. Degenerate block shapes fall back to a cell box grown by the same amount.
	EntityHitboxPad = 0.10
	// EntitySweepMargin grows the bounding box of a travel segment to find candidate entities.
	EntitySweepMargin = 0.35

	DefaultSteps    = 60
	DefaultStepTime = 1.0

	// AimMaxDistance is how far the crosshair ray reaches when resolving the aim point.
	AimMaxDistance = 128.0

	DefaultPlayerHeightOffset  = 1.62
	SneakingPlayerHeightOffset = 1.27
)
