package game

import (
	"math"

	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// CubeBoxToDFBox converts a float32-cube bounding box to a dragonfly bounding box.
func CubeBoxToDFBox(b cube.BBox) df_cube.BBox {
	return df_cube.Box(
		float64(b.Min().X()), float64(b.Min().Y()), float64(b.Min().Z()),
		float64(b.Max().X()), float64(b.Max().Y()), float64(b.Max().Z()),
	)
}

// AABBFromDimensions returns a bounding box from the given dimensions, centred on the X and Z axes.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := math32.Max(width, 0) / 2
	return cube.Box(
		-h, 0, -h,
		h, math32.Max(height, 0), h,
	)
}

// CellBox returns the full unit box of the block at pos.
func CellBox(pos df_cube.Pos) df_cube.BBox {
	return df_cube.Box(0, 0, 0, 1, 1, 1).Translate(pos.Vec3())
}

// NearestFace returns the face of the box whose plane lies closest to the point. Ties resolve in
// the order west, east, down, up, north, south.
func NearestFace(b df_cube.BBox, point mgl64.Vec3) df_cube.Face {
	min, max := b.Min(), b.Max()
	candidates := [...]struct {
		face df_cube.Face
		dist float64
	}{
		{df_cube.FaceWest, math.Abs(point.X() - min.X())},
		{df_cube.FaceEast, math.Abs(point.X() - max.X())},
		{df_cube.FaceDown, math.Abs(point.Y() - min.Y())},
		{df_cube.FaceUp, math.Abs(point.Y() - max.Y())},
		{df_cube.FaceNorth, math.Abs(point.Z() - min.Z())},
		{df_cube.FaceSouth, math.Abs(point.Z() - max.Z())},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.dist < best.dist {
			best = c
		}
	}
	return best.face
}

// EntryFace returns the face a ray travelling in dir enters a box through, which is the face opposite
// the axis direction dir is closest to. A zero dir enters through the south face.
func EntryFace(dir mgl64.Vec3) df_cube.Face {
	axes := [...]struct {
		face df_cube.Face
		dir  mgl64.Vec3
	}{
		{df_cube.FaceDown, mgl64.Vec3{0, -1, 0}},
		{df_cube.FaceUp, mgl64.Vec3{0, 1, 0}},
		{df_cube.FaceNorth, mgl64.Vec3{0, 0, -1}},
		{df_cube.FaceSouth, mgl64.Vec3{0, 0, 1}},
		{df_cube.FaceWest, mgl64.Vec3{-1, 0, 0}},
		{df_cube.FaceEast, mgl64.Vec3{1, 0, 0}},
	}

	travel, best := df_cube.FaceNorth, math.SmallestNonzeroFloat64
	for _, a := range axes {
		if d := dir.Dot(a.dir); d > best {
			travel, best = a.face, d
		}
	}
	return travel.Opposite()
}
