package command

import (
	"strconv"
	"strings"

	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/oomph-ac/aimpreview/tuning"
	"github.com/sandertv/gophertunnel/minecraft/text"
	"github.com/sirupsen/logrus"
)

const (
	Name = "startpos"

	// MaxOffset bounds every offset passed to the command, in both directions.
	MaxOffset = tuning.MaxOffset

	usage = "usage: /startpos set <profile> <forward> <side> <up> | /startpos get <profile>"
)

// Debug is the debug command used to tune start position offsets while playing. It is disabled unless
// Enabled is set.
type Debug struct {
	Enabled bool
	Tuning  *tuning.Table
	Log     *logrus.Logger
}

// NewDebug returns a disabled debug command changing the table passed.
func NewDebug(t *tuning.Table, log *logrus.Logger) *Debug {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Debug{Tuning: t, Log: log}
}

// Execute runs a command line such as "/startpos set bow 0.5 -0.3 -0.1" and returns the feedback to
// show. Mistakes in the command line are returned as usage errors and leave the table unchanged.
func (d *Debug) Execute(line string) (string, error) {
	if !d.Enabled {
		return "", oerror.Usage("debug commands are disabled")
	}
	args := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(args) < 2 || !strings.EqualFold(args[0], Name) {
		return "", oerror.Usage(usage)
	}

	switch strings.ToLower(args[1]) {
	case "set":
		return d.set(args[2:])
	case "get":
		return d.get(args[2:])
	default:
		return "", oerror.Usage(usage)
	}
}

func (d *Debug) set(args []string) (string, error) {
	if len(args) != 4 {
		return "", oerror.Usage(usage)
	}

	var values [3]float64
	for i, name := range [...]string{"forward", "side", "up"} {
		v, err := parseOffset(name, args[i+1])
		if err != nil {
			return "", err
		}
		values[i] = v
	}

	o := tuning.Offset{Forward: values[0], Side: values[1], Up: values[2]}
	if err := d.Tuning.Set(args[0], o); err != nil {
		return "", err
	}
	d.Log.Infof("start position offset of %s set to %+v", strings.ToLower(args[0]), o)
	return text.Colourf("<green>startpos updated</green> <grey>%s</grey>", describe(strings.ToLower(args[0]), o)), nil
}

func (d *Debug) get(args []string) (string, error) {
	if len(args) != 1 {
		return "", oerror.Usage(usage)
	}
	g, ok := d.Tuning.Lookup(args[0])
	if !ok {
		return "", oerror.Usage("unknown profile: %s (expected one of %s)", args[0], strings.Join(d.Tuning.Names(), ", "))
	}
	return text.Colourf("<grey>%s</grey>", describe(string(g), d.Tuning.Get(g))), nil
}

func parseOffset(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, oerror.Usage("%s must be a number, got %q", name, arg)
	}
	if err := tuning.CheckComponent(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

func describe(profile string, o tuning.Offset) string {
	return profile + ": forward " + strconv.FormatFloat(o.Forward, 'f', 3, 64) +
		" side " + strconv.FormatFloat(o.Side, 'f', 3, 64) +
		" up " + strconv.FormatFloat(o.Up, 'f', 3, 64)
}
