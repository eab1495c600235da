package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/stretchr/testify/require"
)

func TestEmptyWorldMisses(t *testing.T) {
	w := New(nil)
	_, ok := w.Raycast(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 20})
	require.False(t, ok)
	require.Equal(t, block.Air{}, w.Block(cube.Pos{3, 3, 3}))
}

func TestRaycastStopsAtFirstSolidFace(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, 0, 5}, block.Stone{})
	w.SetBlock(cube.Pos{0, 0, 8}, block.Stone{})

	hit, ok := w.Raycast(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 20})
	require.True(t, ok)
	require.Equal(t, cube.Pos{0, 0, 5}, hit.Block)
	require.Equal(t, cube.FaceNorth, hit.Face)
	require.InDelta(t, 5.0, hit.Position.Z(), 1e-9)
	require.InDelta(t, 0.5, hit.Position.X(), 1e-9)
}

func TestRaycastRespectsSegmentEnd(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, 0, 5}, block.Stone{})

	_, ok := w.Raycast(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 4.9})
	require.False(t, ok)
}

func TestRaycastStartingInsideBlock(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, 0, 0}, block.Stone{})
	w.SetBlock(cube.Pos{0, 0, 2}, block.Stone{})

	start := mgl64.Vec3{0.5, 0.5, 0.3}
	hit, ok := w.Raycast(start, mgl64.Vec3{0.5, 0.5, 3.3})
	require.True(t, ok)
	require.Equal(t, cube.Pos{0, 0, 0}, hit.Block)
	require.Equal(t, start, hit.Position)
	require.Equal(t, cube.FaceNorth, hit.Face)
}

func TestRaycastFromAbove(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{2, 0, 2}, block.Stone{})

	hit, ok := w.Raycast(mgl64.Vec3{2.25, 4, 2.75}, mgl64.Vec3{2.25, -3, 2.75})
	require.True(t, ok)
	require.Equal(t, cube.Pos{2, 0, 2}, hit.Block)
	require.Equal(t, cube.FaceUp, hit.Face)
	require.InDelta(t, 1.0, hit.Position.Y(), 1e-9)
}

func TestClearingBlocks(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, 0, 0}, block.Stone{})
	require.Equal(t, 1, w.Len())
	require.Len(t, w.BlockCollisions(cube.Pos{0, 0, 0}), 1)

	w.SetBlock(cube.Pos{0, 0, 0}, block.Air{})
	require.Zero(t, w.Len())
	require.Empty(t, w.BlockCollisions(cube.Pos{0, 0, 0}))
}

func TestSolidCollisionIsCellLocal(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{-4, 70, 12}, block.Stone{})

	boxes := w.BlockCollisions(cube.Pos{-4, 70, 12})
	require.Equal(t, []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}, boxes)
}

func TestSetBlockOutOfBounds(t *testing.T) {
	w := New(nil)
	w.SetBlock(cube.Pos{0, Range.Max() + 1, 0}, block.Stone{})
	w.SetBlock(cube.Pos{0, Range.Min() - 1, 0}, block.Stone{})
	require.Zero(t, w.Len())
}

func TestBlockByName(t *testing.T) {
	b, err := BlockByName("minecraft:stone", nil)
	require.NoError(t, err)
	require.Equal(t, "minecraft:stone", BlockName(b))

	_, err = BlockByName("minecraft:not_a_block", nil)
	require.ErrorIs(t, err, oerror.ErrUsage)
}
