package profile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimpreview/game"
	"github.com/oomph-ac/aimpreview/tuning"
)

// Kind is the kind of projectile a launch profile describes.
type Kind uint8

const (
	KindBow Kind = iota
	KindCrossbow
	KindTrident
	KindWindCharge
	KindExperienceBottle
	KindPotion
	KindEnderPearl
	KindSnowball
)

// String ...
func (k Kind) String() string {
	switch k {
	case KindBow:
		return "bow"
	case KindCrossbow:
		return "crossbow"
	case KindTrident:
		return "trident"
	case KindWindCharge:
		return "wind_charge"
	case KindExperienceBottle:
		return "experience_bottle"
	case KindPotion:
		return "potion"
	case KindEnderPearl:
		return "ender_pearl"
	case KindSnowball:
		return "snowball"
	default:
		return "unknown"
	}
}

// Profile is the constant set describing one kind of projectile: its ballistic constants and how its
// start position and velocities are derived from the actor.
type Profile struct {
	Kind Kind
	// Drag is the fraction of velocity kept every step.
	Drag float64
	// Gravity is the downward velocity added every step.
	Gravity float64
	// Steps is the maximum amount of steps simulated.
	Steps int
	// StepTime scales the displacement of every step.
	StepTime float64
	// Speed is the launch speed along the aim direction.
	Speed float64
	// Group is the tuning group the start position offset is read from.
	Group tuning.Group

	position   positionFunc
	velocities velocityFunc
}

type (
	positionFunc func(r *Resolver, p Profile, a Actor, partial float64) mgl64.Vec3
	velocityFunc func(r *Resolver, p Profile, a Actor, held HeldItem, partial float64) []mgl64.Vec3
)

var profiles = [...]Profile{
	KindBow:              newProfile(KindBow, 0.99, 0.05, 3.0, tuning.GroupBow, handTipPosition, bowVelocities),
	KindCrossbow:         newProfile(KindCrossbow, 0.99, 0.05, 3.15, tuning.GroupCrossbow, handTipPosition, crossbowVelocities),
	KindTrident:          newProfile(KindTrident, 0.99, 0.05, 3.0, tuning.GroupTrident, tridentPosition, aimedVelocities),
	KindWindCharge:       newProfile(KindWindCharge, 0.995, 0, 1.6, tuning.GroupWind, handTipPosition, aimedVelocities),
	KindExperienceBottle: newProfile(KindExperienceBottle, 0.99, 0.07, 0.7, tuning.GroupThrowable, handTipPosition, underhandVelocities),
	KindPotion:           newProfile(KindPotion, 0.99, 0.05, 0.5, tuning.GroupThrowable, handTipPosition, underhandVelocities),
	KindEnderPearl:       newProfile(KindEnderPearl, 0.99, 0.03, 1.5, tuning.GroupThrowable, handTipPosition, aimedVelocities),
	KindSnowball:         newProfile(KindSnowball, 0.99, 0.03, 1.5, tuning.GroupThrowable, handTipPosition, aimedVelocities),
}

func newProfile(k Kind, drag, gravity, speed float64, g tuning.Group, pos positionFunc, vel velocityFunc) Profile {
	return Profile{
		Kind:       k,
		Drag:       drag,
		Gravity:    gravity,
		Steps:      game.DefaultSteps,
		StepTime:   game.DefaultStepTime,
		Speed:      speed,
		Group:      g,
		position:   pos,
		velocities: vel,
	}
}

// ByKind returns the profile of the kind passed.
func ByKind(k Kind) (Profile, bool) {
	if int(k) >= len(profiles) {
		return Profile{}, false
	}
	return profiles[k], true
}

// Match selects the launch profile for the item held by the actor. No profile is returned for items
// that cannot be launched, or when the use state of the item does not allow it yet: a bow or trident
// must be in use, and a crossbow must be charged.
func Match(a Actor, held HeldItem) (Profile, bool) {
	switch held.Kind {
	case ItemBow:
		if !a.UsingItem() {
			return Profile{}, false
		}
		return profiles[KindBow], true
	case ItemCrossbow:
		if !held.Charged {
			return Profile{}, false
		}
		return profiles[KindCrossbow], true
	case ItemTrident:
		if !a.UsingItem() {
			return Profile{}, false
		}
		return profiles[KindTrident], true
	case ItemWindCharge:
		return profiles[KindWindCharge], true
	case ItemExperienceBottle:
		return profiles[KindExperienceBottle], true
	case ItemSplashPotion, ItemLingeringPotion:
		return profiles[KindPotion], true
	case ItemEnderPearl:
		return profiles[KindEnderPearl], true
	case ItemSnowball, ItemEgg:
		return profiles[KindSnowball], true
	}
	return Profile{}, false
}

// BowPullProgress returns how far a bow has been drawn after being used for the ticks passed, in
// [0, 1].
func BowPullProgress(ticks int) float64 {
	f := float64(ticks) / 20
	f = (f*f + f*2) / 3
	if f > 1 {
		f = 1
	}
	return f
}
