package preview

import (
	"image/color"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/aimpreview/entity"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/oomph-ac/aimpreview/trajectory"
)

// outlinePush is how far outlines are pushed out of the box they surround, so that they are not
// hidden inside it.
const outlinePush = 0.01

const fillAlpha = 80

var (
	PathColour  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlockColour = color.RGBA{R: 80, G: 160, B: 255, A: 255}

	entityColours = map[entity.Category]color.RGBA{
		entity.CategoryPlayer:  {R: 180, G: 90, B: 255, A: 255},
		entity.CategoryPassive: {R: 60, G: 255, B: 120, A: 255},
		entity.CategoryHostile: {R: 255, G: 70, B: 70, A: 255},
		entity.CategoryOther:   {R: 255, G: 165, B: 60, A: 255},
	}
)

// EntityColour returns the colour entities of the category passed are highlighted with.
func EntityColour(c entity.Category) color.RGBA {
	if col, ok := entityColours[c]; ok {
		return col
	}
	return entityColours[entity.CategoryOther]
}

// Overlay describes how the obstruction at the end of a path is highlighted.
type Overlay struct {
	// Box is the box that was struck.
	Box cube.BBox
	// Outline is Box pushed slightly outwards.
	Outline cube.BBox
	// Face is the face of Box that is filled.
	Face cube.Face

	OutlineColour color.RGBA
	FillColour    color.RGBA
}

func newOverlay(box cube.BBox, face cube.Face, col color.RGBA) Overlay {
	fill := col
	fill.A = fillAlpha
	return Overlay{
		Box:           box,
		Outline:       box.Grow(outlinePush),
		Face:          face,
		OutlineColour: col,
		FillColour:    fill,
	}
}

// overlay returns the overlay of a hit, or false if there is nothing to highlight.
func (p *Previewer) overlay(hit trajectory.Hit) (Overlay, bool) {
	switch hit.Kind {
	case trajectory.HitNone:
		return Overlay{}, false
	case trajectory.HitBlock:
		return newOverlay(hit.Block.Box, hit.Block.Face, BlockColour), true
	case trajectory.HitEntity:
		category := entity.CategoryOther
		if p.scene.Entities != nil {
			if e, ok := p.scene.Entities.Entity(hit.Entity.ID); ok {
				category = e.Category()
			}
		}
		return newOverlay(hit.Entity.Box, game.NearestFace(hit.Entity.Box, hit.Point), EntityColour(category)), true
	default:
		panic(oerror.New("unknown hit kind %d", hit.Kind))
	}
}
