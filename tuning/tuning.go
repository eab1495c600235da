package tuning

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/pelletier/go-toml"
	"github.com/samber/lo"
)

// Group names a set of launch profiles that share one start position offset.
type Group string

const (
	GroupBow       Group = "bow"
	GroupCrossbow  Group = "crossbow"
	GroupTrident   Group = "trident"
	GroupThrowable Group = "throwable"
	GroupWind      Group = "wind"
)

// MaxOffset bounds every component of an offset, in both directions.
const MaxOffset = 2.0

// Offset is a muzzle offset relative to the eye of the actor. Side is mirrored when the item is
// held in the left arm.
type Offset struct {
	Forward float64
	Side    float64
	Up      float64
}

// Validate returns a usage error if any component of the offset is not a number within MaxOffset.
func (o Offset) Validate() error {
	for _, c := range [...]struct {
		name string
		v    float64
	}{{"forward", o.Forward}, {"side", o.Side}, {"up", o.Up}} {
		if err := CheckComponent(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// CheckComponent returns a usage error unless v lies within [-MaxOffset, MaxOffset]. NaN never does.
func CheckComponent(name string, v float64) error {
	if !(v >= -MaxOffset && v <= MaxOffset) {
		return oerror.Usage("%s must be between %v and %v, got %v", name, -MaxOffset, MaxOffset, v)
	}
	return nil
}

// Table holds the start position offset of every group. The zero value is not usable; construct a
// Table with New.
type Table struct {
	mu      sync.RWMutex
	offsets *orderedmap.OrderedMap[Group, Offset]
}

// New returns a Table filled with the default offsets.
func New() *Table {
	t := &Table{offsets: orderedmap.NewOrderedMap[Group, Offset]()}
	t.offsets.Set(GroupBow, Offset{Forward: 0.45, Side: -0.35, Up: -0.08})
	t.offsets.Set(GroupCrossbow, Offset{Forward: 0.10, Side: 0.00, Up: -0.08})
	t.offsets.Set(GroupTrident, Offset{Forward: 0.10, Side: -0.10, Up: 0.025})
	t.offsets.Set(GroupThrowable, Offset{Forward: 0.15, Side: -0.20, Up: -0.10})
	t.offsets.Set(GroupWind, Offset{Forward: 0.15, Side: -0.20, Up: -0.10})
	return t
}

// Get returns the offset of the group passed. Unknown groups return a zero offset.
func (t *Table) Get(g Group) Offset {
	t.mu.RLock()
	defer t.mu.RUnlock()

	o, _ := t.offsets.Get(g)
	return o
}

// Set overrides the offset of the group named. Names are matched case-insensitively. An unknown name
// or an offset out of bounds is a usage error.
func (t *Table) Set(name string, o Offset) error {
	g, ok := t.Lookup(name)
	if !ok {
		return oerror.Usage("unknown profile: %s (expected one of %s)", name, strings.Join(t.Names(), ", "))
	}
	if err := o.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.offsets.Set(g, o)
	return nil
}

// Lookup resolves a case-insensitive group name.
func (t *Table) Lookup(name string) (Group, bool) {
	g := Group(strings.ToLower(strings.TrimSpace(name)))

	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.offsets.Get(g)
	return g, ok
}

// Groups returns every group in its fixed order.
func (t *Table) Groups() []Group {
	t.mu.RLock()
	defer t.mu.RUnlock()

	groups := make([]Group, 0, t.offsets.Len())
	for el := t.offsets.Front(); el != nil; el = el.Next() {
		groups = append(groups, el.Key)
	}
	return groups
}

// Names returns the name of every group in its fixed order.
func (t *Table) Names() []string {
	return lo.Map(t.Groups(), func(g Group, _ int) string {
		return string(g)
	})
}

// Decode applies the overrides in a TOML document to the table. Every top-level table in the
// document must name a group; omitted fields keep their current value and every value is bounded by
// MaxOffset:
//
//	[bow]
//	forward = 0.5
//	side = -0.3
//	up = -0.1
//
// The document is validated in full before any override is applied.
func (t *Table) Decode(data []byte) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}

	updates := make(map[string]Offset, len(tree.Keys()))
	for _, name := range tree.Keys() {
		g, ok := t.Lookup(name)
		if !ok {
			return oerror.Usage("unknown profile: %s (expected one of %s)", name, strings.Join(t.Names(), ", "))
		}
		sub, ok := tree.Get(name).(*toml.Tree)
		if !ok {
			return oerror.Usage("tuning entry %s must be a table", name)
		}

		o := t.Get(g)
		for key, dst := range map[string]*float64{"forward": &o.Forward, "side": &o.Side, "up": &o.Up} {
			if !sub.Has(key) {
				continue
			}
			v, ok := number(sub.Get(key))
			if !ok {
				return oerror.Usage("tuning entry %s.%s must be a number", name, key)
			}
			*dst = v
		}
		if err := o.Validate(); err != nil {
			return oerror.Usage("tuning entry %s: %v", name, err)
		}
		updates[name] = o
	}

	for name, o := range updates {
		if err := t.Set(name, o); err != nil {
			return err
		}
	}
	return nil
}

func number(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Load reads a TOML file of overrides and applies it to the table.
func (t *Table) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	return t.Decode(data)
}
