package game

import (
	"iter"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
)

// RayHit is the point where a segment first meets solid static geometry.
type RayHit struct {
	// Position is the exact intersection point on the struck box.
	Position mgl64.Vec3
	// Block is the cell whose collision shape was struck.
	Block cube.Pos
	// Face is the face of the struck box the segment entered through.
	Face cube.Face
}

// Intercept returns the point and face where the segment from start to end first meets bb. A segment
// starting inside bb meets it at start, on the face it travels away from.
func Intercept(bb cube.BBox, start, end mgl64.Vec3) (mgl64.Vec3, cube.Face, bool) {
	if bb.Vec3Within(start) {
		return start, EntryFace(end.Sub(start)), true
	}
	res, ok := trace.BBoxIntercept(bb, start, end)
	if !ok {
		return mgl64.Vec3{}, 0, false
	}
	return res.Position(), res.Face(), true
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func BlocksBetween(start, end mgl64.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		radius := end.Sub(start).Len()
		if radius <= 0 {
			return
		}
		dirVec := end.Sub(start).Mul(1 / radius)

		stepX := PHPSpaceshipOp(dirVec.X(), 0)
		stepY := PHPSpaceshipOp(dirVec.Y(), 0)
		stepZ := PHPSpaceshipOp(dirVec.Z(), 0)

		tMaxX := rayTraceDistanceToBoundary(start.X(), dirVec.X())
		tMaxY := rayTraceDistanceToBoundary(start.Y(), dirVec.Y())
		tMaxZ := rayTraceDistanceToBoundary(start.Z(), dirVec.Z())

		tDeltaX := 0.0
		if dirVec.X() != 0 {
			tDeltaX = stepX / dirVec.X()
		}

		tDeltaY := 0.0
		if dirVec.Y() != 0 {
			tDeltaY = stepY / dirVec.Y()
		}

		tDeltaZ := 0.0
		if dirVec.Z() != 0 {
			tDeltaZ = stepZ / dirVec.Z()
		}

		currentBlock := cube.PosFromVec3(start)
		for {
			if !yield(currentBlock) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > radius {
					return
				}
				currentBlock[0] += int(stepX)
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > radius {
					return
				}
				currentBlock[1] += int(stepY)
				tMaxY += tDeltaY
			} else {
				if tMaxZ > radius {
					return
				}
				currentBlock[2] += int(stepZ)
				tMaxZ += tDeltaZ
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func rayTraceDistanceToBoundary(s, ds float64) float64 {
	if ds == 0 {
		return math.MaxFloat64
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math.Floor(s))) / ds
}
