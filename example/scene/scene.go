package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	dfworld "github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/aimpreview/entity"
	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/oomph-ac/aimpreview/player"
	"github.com/oomph-ac/aimpreview/profile"
	"github.com/oomph-ac/aimpreview/provider"
	"github.com/oomph-ac/aimpreview/world"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Scene describes a static world, the entities in it and the player aiming through it.
type Scene struct {
	// Frames is the amount of ticks previewed.
	Frames int `toml:"frames"`
	// Partial is the sub-tick fraction every frame is interpolated by.
	Partial float64 `toml:"partial"`
	// Tuning is an optional path to a file of start position offsets.
	Tuning string `toml:"tuning"`
	// Commands are debug commands executed before the first frame.
	Commands []string `toml:"commands"`

	Actor    ActorSpec    `toml:"actor"`
	Blocks   []BlockSpec  `toml:"blocks"`
	Entities []EntitySpec `toml:"entities"`
}

type ActorSpec struct {
	Position   []float64 `toml:"position"`
	Velocity   []float64 `toml:"velocity"`
	Yaw        float64   `toml:"yaw"`
	Pitch      float64   `toml:"pitch"`
	Sneaking   bool      `toml:"sneaking"`
	LeftHanded bool      `toml:"left_handed"`

	// Path lists the poses the player moves to after each frame, as x, y, z and optionally yaw and
	// pitch.
	Path [][]float64 `toml:"path"`

	Item    string `toml:"item"`
	OffHand string `toml:"offhand"`
	// Using is "main" or "off" to use the item in that hand, or empty.
	Using     string `toml:"using"`
	UseTicks  int    `toml:"use_ticks"`
	Charged   bool   `toml:"charged"`
	Multishot int    `toml:"multishot"`
	// Release is the amount of frames after which the item in use is released. Zero keeps using it.
	Release int `toml:"release"`
}

// BlockSpec fills the cuboid between From and To, inclusive, with one block.
type BlockSpec struct {
	Name       string         `toml:"name"`
	Properties map[string]any `toml:"properties"`
	From       []int          `toml:"from"`
	To         []int          `toml:"to"`
}

type EntitySpec struct {
	ID       uint64    `toml:"id"`
	Position []float64 `toml:"position"`
	Width    float64   `toml:"width"`
	Height   float64   `toml:"height"`
	Category string    `toml:"category"`
	// Path lists the positions the entity is sent to after each frame.
	Path [][]float64 `toml:"path"`
	// Despawn is the amount of frames after which the entity is removed. Zero keeps it.
	Despawn int `toml:"despawn"`

	Dead         bool `toml:"dead"`
	Spectator    bool `toml:"spectator"`
	Untargetable bool `toml:"untargetable"`
}

// DefaultScene returns a player drawing a bow at a zombie in front of a wall.
func DefaultScene() Scene {
	return Scene{
		Frames:  5,
		Partial: 0.5,
		Actor: ActorSpec{
			Position: []float64{0.5, 64, 0.5},
			Yaw:      0,
			Pitch:    -5,
			Item:     "minecraft:bow",
			Using:    "main",
			UseTicks: 8,
		},
		Blocks: []BlockSpec{
			{Name: "minecraft:stone", From: []int{-4, 63, -4}, To: []int{4, 63, 40}},
			{Name: "minecraft:cobblestone", From: []int{-4, 64, 30}, To: []int{4, 70, 30}},
		},
		Entities: []EntitySpec{
			{ID: 2, Position: []float64{4.5, 64, 12.5}, Width: 0.6, Height: 1.95, Category: "hostile"},
		},
	}
}

// Load reads a scene from a TOML file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("error reading scene: %w", err)
	}
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("error decoding scene: %w", err)
	}
	return s, nil
}

// Build creates the world, entities and player of the scene.
func (s Scene) Build(log *logrus.Logger) (provider.Scene, *player.Player, error) {
	w := world.New(log)
	for _, bs := range s.Blocks {
		b, err := world.BlockByName(bs.Name, blockProperties(bs.Properties))
		if err != nil {
			return provider.Scene{}, nil, err
		}
		from, err := blockPos(bs.From)
		if err != nil {
			return provider.Scene{}, nil, fmt.Errorf("%s from: %w", bs.Name, err)
		}
		to, err := blockPos(bs.To)
		if err != nil {
			return provider.Scene{}, nil, fmt.Errorf("%s to: %w", bs.Name, err)
		}
		fill(w, from, to, b)
	}

	tracker := entity.NewTracker()
	for _, es := range s.Entities {
		pos, err := vec(es.Position)
		if err != nil {
			return provider.Scene{}, nil, fmt.Errorf("entity %d position: %w", es.ID, err)
		}
		for i, v := range es.Path {
			if _, err := vec(v); err != nil {
				return provider.Scene{}, nil, fmt.Errorf("entity %d path %d: %w", es.ID, i, err)
			}
		}
		e := entity.New(es.ID, pos, float32(es.Width), float32(es.Height), category(es.Category))
		e.SetAlive(!es.Dead)
		e.SetSpectator(es.Spectator)
		e.SetHittable(!es.Untargetable)
		tracker.Add(e)
	}

	p, err := s.Actor.build()
	if err != nil {
		return provider.Scene{}, nil, err
	}
	return provider.Scene{World: w, Entities: tracker}, p, nil
}

// Advance moves the scene one tick forward once the frame passed has been previewed: the player and
// entities follow their paths, the item in use may be released and despawned entities are removed.
func (s Scene) Advance(frame int, p *player.Player, tracker *entity.Tracker) {
	p.Tick()
	if s.Actor.Release == frame+1 {
		p.ReleaseItem()
	}
	if frame < len(s.Actor.Path) {
		// Paths are validated by Build.
		pos, yaw, pitch, _ := pose(s.Actor.Path[frame], float32(s.Actor.Yaw), float32(s.Actor.Pitch))
		p.Move(pos, yaw, pitch)
	}

	for _, es := range s.Entities {
		if es.Despawn == frame+1 {
			tracker.Remove(es.ID)
			continue
		}
		if frame >= len(es.Path) {
			continue
		}
		if e, ok := tracker.Entity(es.ID); ok {
			pos, _ := vec(es.Path[frame])
			e.UpdatePosition(pos)
		}
	}
	tracker.Tick()
}

// HeldItem returns the held item of the player, with the multishot level of the scene applied.
func (s Scene) HeldItem(p *player.Player) profile.HeldItem {
	held := p.HeldItem()
	if s.Actor.Multishot > held.Multishot {
		held.Multishot = s.Actor.Multishot
	}
	return held
}

func (a ActorSpec) build() (*player.Player, error) {
	pos, err := vec(a.Position)
	if err != nil {
		return nil, fmt.Errorf("actor position: %w", err)
	}
	p := player.New(1)
	p.Teleport(pos, float32(a.Yaw), float32(a.Pitch))
	if len(a.Velocity) > 0 {
		vel, err := vec(a.Velocity)
		if err != nil {
			return nil, fmt.Errorf("actor velocity: %w", err)
		}
		p.SetVelocity(vel)
	}
	for i, v := range a.Path {
		if _, _, _, err := pose(v, 0, 0); err != nil {
			return nil, fmt.Errorf("actor path %d: %w", i, err)
		}
	}
	p.SetSneaking(a.Sneaking)
	if a.LeftHanded {
		p.SetMainArm(profile.ArmLeft)
	}

	mainHand, err := stack(a.Item)
	if err != nil {
		return nil, err
	}
	offHand, err := stack(a.OffHand)
	if err != nil {
		return nil, err
	}
	p.SetHeldItems(mainHand, offHand)
	p.SetCrossbowCharged(a.Charged)

	switch strings.ToLower(a.Using) {
	case "":
	case "main":
		p.UseItem(profile.HandMain)
	case "off":
		p.UseItem(profile.HandOff)
	default:
		return nil, oerror.Usage("actor using must be main or off, got %q", a.Using)
	}
	for range a.UseTicks {
		p.Tick()
	}
	return p, nil
}

func stack(name string) (item.Stack, error) {
	if name == "" {
		return item.Stack{}, nil
	}
	it, ok := dfworld.ItemByName(name, 0)
	if !ok {
		return item.Stack{}, oerror.Usage("unknown item: %s", name)
	}
	return item.NewStack(it, 1), nil
}

func fill(w *world.World, from, to cube.Pos, b dfworld.Block) {
	for x := min(from[0], to[0]); x <= max(from[0], to[0]); x++ {
		for y := min(from[1], to[1]); y <= max(from[1], to[1]); y++ {
			for z := min(from[2], to[2]); z <= max(from[2], to[2]); z++ {
				w.SetBlock(cube.Pos{x, y, z}, b)
			}
		}
	}
}

func blockPos(v []int) (cube.Pos, error) {
	if len(v) != 3 {
		return cube.Pos{}, oerror.Usage("expected 3 coordinates, got %d", len(v))
	}
	return cube.Pos{v[0], v[1], v[2]}, nil
}

func vec(v []float64) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, oerror.Usage("expected 3 coordinates, got %d", len(v))
	}
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}, nil
}

// pose reads a position optionally followed by a yaw and pitch, which otherwise default to those passed.
func pose(v []float64, yaw, pitch float32) (mgl32.Vec3, float32, float32, error) {
	switch len(v) {
	case 3:
		pos, err := vec(v)
		return pos, yaw, pitch, err
	case 5:
		pos, err := vec(v[:3])
		return pos, float32(v[3]), float32(v[4]), err
	default:
		return mgl32.Vec3{}, 0, 0, oerror.Usage("expected 3 coordinates and an optional yaw and pitch, got %d values", len(v))
	}
}

// blockProperties converts TOML integers to the int32 block states are encoded with.
func blockProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		if i, ok := v.(int64); ok {
			v = int32(i)
		}
		out[k] = v
	}
	return out
}

func category(name string) entity.Category {
	switch strings.ToLower(name) {
	case "player":
		return entity.CategoryPlayer
	case "passive":
		return entity.CategoryPassive
	case "hostile":
		return entity.CategoryHostile
	default:
		return entity.CategoryOther
	}
}
