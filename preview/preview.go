package preview

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/internal"
	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/oomph-ac/aimpreview/profile"
	"github.com/oomph-ac/aimpreview/provider"
	"github.com/oomph-ac/aimpreview/trajectory"
	"github.com/oomph-ac/aimpreview/tuning"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Actor is a player that projectile paths can be previewed for.
type Actor interface {
	profile.Actor
	RuntimeID() uint64
}

// Options changes how far paths are previewed. Zero values mean the defaults.
type Options struct {
	// Steps overrides the step horizon of every profile.
	Steps int
	// AimDistance is how far the crosshair ray reaches.
	AimDistance float64
}

// Path is the simulated path of a single projectile.
type Path struct {
	trajectory.Result
	// Overlay highlights the obstruction the path ends at. It is only valid if HasOverlay is true.
	Overlay    Overlay
	HasOverlay bool
}

// Frame is everything previewed for an actor in a single rendered frame.
type Frame struct {
	Profile profile.Kind
	Paths   []Path
}

// Empty returns true if there is nothing to show for the frame.
func (f Frame) Empty() bool {
	return len(f.Paths) == 0
}

// Previewer predicts the paths of projectiles an actor is about to launch.
type Previewer struct {
	scene    provider.Scene
	resolver *profile.Resolver
	sim      *trajectory.Simulator
	opts     Options
	log      *logrus.Logger

	last uint64
}

// New creates a Previewer over the scene passed, reading start position offsets from t. log may be
// nil, in which case the standard logger is used.
func New(scene provider.Scene, t *tuning.Table, opts Options, log *logrus.Logger) *Previewer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := profile.NewResolver(t, scene.Raycaster())
	if opts.AimDistance > 0 {
		r.AimDistance = opts.AimDistance
	}
	return &Previewer{
		scene:    scene,
		resolver: r,
		sim:      scene.Simulator(),
		opts:     opts,
		log:      log,
	}
}

// Frame previews the projectiles the actor would launch with the item held, interpolated by partial
// between the previous and current tick. An empty frame is returned if nothing can be launched.
func (p *Previewer) Frame(a Actor, held profile.HeldItem, partial float64) (frame Frame) {
	defer func() {
		if err := recover(); err != nil {
			p.log.Errorf("Frame() panic: %v", err)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("held_item", held.Kind.String())
			})
			hub.Recover(oerror.New("%v", err))
			frame = Frame{}
		}
	}()

	if a == nil {
		return Frame{}
	}
	prof, ok := profile.Match(a, held)
	if !ok {
		return Frame{}
	}
	frame.Profile = prof.Kind

	velocities := p.resolver.StartVelocities(prof, a, held, partial)
	if len(velocities) == 0 {
		return Frame{}
	}
	start := p.resolver.StartPosition(prof, a, partial)

	steps := prof.Steps
	if p.opts.Steps > 0 {
		steps = p.opts.Steps
	}
	for _, vel := range velocities {
		res, ok := p.sim.Simulate(trajectory.Request{
			Owner:    a.RuntimeID(),
			Start:    start,
			Velocity: vel,
			Gravity:  prof.Gravity,
			Drag:     prof.Drag,
			Steps:    steps,
			StepTime: prof.StepTime,
		})
		if !ok {
			return Frame{}
		}
		if len(res.Points) < 2 {
			continue
		}
		path := Path{Result: res}
		path.Overlay, path.HasOverlay = p.overlay(res.Hit)
		frame.Paths = append(frame.Paths, path)
	}
	if frame.Empty() {
		return Frame{}
	}

	if fp := fingerprint(frame); fp != p.last {
		p.last = fp
		p.log.Debugf("%s preview changed: %s", prof.Kind, describe(frame))
	}
	return frame
}

// fingerprint hashes the outcome of a frame: what each path ended on, ignoring exact positions.
func fingerprint(f Frame) uint64 {
	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	var scratch [8]byte
	buf.WriteByte(byte(f.Profile))
	for _, path := range f.Paths {
		buf.WriteByte(byte(path.Hit.Kind))
		switch path.Hit.Kind {
		case trajectory.HitBlock:
			for _, v := range path.Hit.Block.Pos {
				binary.LittleEndian.PutUint64(scratch[:], uint64(int64(v)))
				buf.Write(scratch[:])
			}
			buf.WriteByte(byte(path.Hit.Block.Face))
		case trajectory.HitEntity:
			binary.LittleEndian.PutUint64(scratch[:], path.Hit.Entity.ID)
			buf.Write(scratch[:])
		}
	}
	return xxh3.Hash(buf.Bytes())
}

func describe(f Frame) string {
	var b strings.Builder
	for i, path := range f.Paths {
		if i > 0 {
			b.WriteString(", ")
		}
		end := game.RoundVec64(path.End(), 3)
		switch path.Hit.Kind {
		case trajectory.HitBlock:
			fmt.Fprintf(&b, "block %v (%v) at %v", path.Hit.Block.Pos, path.Hit.Block.Face, end)
		case trajectory.HitEntity:
			fmt.Fprintf(&b, "entity %d at %v", path.Hit.Entity.ID, end)
		default:
			fmt.Fprintf(&b, "nothing, %d points ending at %v", len(path.Points), end)
		}
	}
	return b.String()
}
