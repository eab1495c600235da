package game

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual mgl64.Vec3) {
	t.Helper()
	require.InDelta(t, 0, expected.Sub(actual).Len(), 1e-9, "expected %v, got %v", expected, actual)
}

func TestDirectionVector(t *testing.T) {
	requireVecInDelta(t, mgl64.Vec3{0, 0, 1}, DirectionVector(0, 0))
	requireVecInDelta(t, mgl64.Vec3{-1, 0, 0}, DirectionVector(90, 0))
	requireVecInDelta(t, mgl64.Vec3{0, -1, 0}, DirectionVector(0, 90))
	requireVecInDelta(t, mgl64.Vec3{0, 1, 0}, DirectionVector(37, -90))

	require.InDelta(t, 1, DirectionVector(123, -41).Len(), 1e-9)
}

func TestRotateYawKeepsVerticalAndLength(t *testing.T) {
	v := mgl64.Vec3{0.3, -0.7, 2.1}
	r := RotateYaw(v, 10)
	require.Equal(t, v.Y(), r.Y())
	require.InDelta(t, v.Len(), r.Len(), 1e-9)

	requireVecInDelta(t, v, RotateYaw(r, -10))
	requireVecInDelta(t, HorizontalForward(30), RotateYaw(HorizontalForward(0), 30))
}

func TestNormalizeOr(t *testing.T) {
	fallback := mgl64.Vec3{0, 0, 1}
	require.Equal(t, fallback, NormalizeOr(mgl64.Vec3{}, fallback))
	requireVecInDelta(t, mgl64.Vec3{0.6, 0, 0.8}, NormalizeOr(mgl64.Vec3{3, 0, 4}, fallback))
}

func TestNearestFace(t *testing.T) {
	bb := cube.Box(0, 0, 0, 1, 2, 1)
	require.Equal(t, cube.FaceUp, NearestFace(bb, mgl64.Vec3{0.5, 1.95, 0.5}))
	require.Equal(t, cube.FaceWest, NearestFace(bb, mgl64.Vec3{0.02, 1, 0.5}))
	require.Equal(t, cube.FaceSouth, NearestFace(bb, mgl64.Vec3{0.5, 1, 1.1}))
}

func TestEntryFace(t *testing.T) {
	require.Equal(t, cube.FaceNorth, EntryFace(mgl64.Vec3{0, 0, 3}))
	require.Equal(t, cube.FaceUp, EntryFace(mgl64.Vec3{0.2, -1, 0.4}))
	require.Equal(t, cube.FaceEast, EntryFace(mgl64.Vec3{-2, 1, 1}))
	require.Equal(t, cube.FaceSouth, EntryFace(mgl64.Vec3{}))
}

func TestCellBox(t *testing.T) {
	require.Equal(t, cube.Box(-3, 5, 7, -2, 6, 8), CellBox(cube.Pos{-3, 5, 7}))
}

func TestCubeBoxToDFBox(t *testing.T) {
	bb := CubeBoxToDFBox(AABBFromDimensions(0.6, 1.8).Translate(mgl32.Vec3{0, 0, 1.8}))
	require.InDelta(t, 0, bb.Min().Sub(mgl64.Vec3{-0.3, 0, 1.5}).Len(), 1e-6)
	require.InDelta(t, 0, bb.Max().Sub(mgl64.Vec3{0.3, 1.8, 2.1}).Len(), 1e-6)
}
