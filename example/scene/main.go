package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/aimpreview/command"
	"github.com/oomph-ac/aimpreview/preview"
	"github.com/oomph-ac/aimpreview/trajectory"
	"github.com/oomph-ac/aimpreview/tuning"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

// The following program previews the projectile paths of a player in a scene read from a TOML file,
// or in a built-in scene if no file is passed.
func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	sc := DefaultScene()
	if len(os.Args) > 1 {
		var err error
		if sc, err = Load(os.Args[1]); err != nil {
			log.Fatal(err)
		}
	}
	if err := run(sc, log); err != nil {
		log.Fatal(err)
	}
}

func run(sc Scene, log *logrus.Logger) error {
	table := tuning.New()
	if sc.Tuning != "" {
		if err := table.Load(sc.Tuning); err != nil {
			return err
		}
	}

	dbg := command.NewDebug(table, log)
	dbg.Enabled = len(sc.Commands) > 0
	if dbg.Enabled {
		pk := &packet.AvailableCommands{}
		dbg.Register(pk)
		for _, c := range pk.Commands {
			log.Debugf("registered /%s with %d overloads", c.Name, len(c.Overloads))
		}
	}
	for _, line := range sc.Commands {
		msg, err := dbg.Execute(line)
		if err != nil {
			return fmt.Errorf("command %q: %w", line, err)
		}
		log.Info(msg)
	}

	scene, p, err := sc.Build(log)
	if err != nil {
		return err
	}
	pv := preview.New(scene, table, preview.Options{}, log)

	for i := range max(sc.Frames, 1) {
		frame := pv.Frame(p, sc.HeldItem(p), sc.Partial)
		if frame.Empty() {
			log.Infof("frame %d: nothing to preview", i)
		}
		for j, path := range frame.Paths {
			log.Infof("frame %d: %s path %d: %d points, %s", i, frame.Profile, j, len(path.Points), outcome(path))
		}
		sc.Advance(i, p, scene.Entities)
	}
	return nil
}

func outcome(path preview.Path) string {
	switch path.Hit.Kind {
	case trajectory.HitBlock:
		return fmt.Sprintf("hit block %v on face %v at %v", path.Hit.Block.Pos, path.Hit.Block.Face, path.Hit.Point)
	case trajectory.HitEntity:
		return fmt.Sprintf("hit entity %d at %v (outline %v)", path.Hit.Entity.ID, path.Hit.Point, path.Overlay.OutlineColour)
	default:
		return fmt.Sprintf("flew clear to %v", path.End())
	}
}
