package player

import (
	"strings"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/aimpreview/profile"
)

// SetHeldItems updates the items in the hands of the player. A crossbow that is swapped out loses its
// charge.
func (p *Player) SetHeldItems(mainHand, offHand item.Stack) {
	p.Lock()
	defer p.Unlock()

	if !isCrossbow(mainHand) && !isCrossbow(offHand) {
		p.crossbowCharged = false
	}
	p.mainHand, p.offHand = mainHand, offHand
}

// SetCrossbowCharged sets whether the crossbow held by the player is loaded.
func (p *Player) SetCrossbowCharged(charged bool) {
	p.Lock()
	p.crossbowCharged = charged
	p.Unlock()
}

// UseItem starts using the item in the hand passed. The use ticks are reset.
func (p *Player) UseItem(hand profile.Hand) {
	p.Lock()
	defer p.Unlock()

	p.usingItem = true
	p.activeHand = hand
	p.useTicks = 0
}

// ReleaseItem stops using the item in use, if any. A crossbow drawn long enough is loaded when
// released.
func (p *Player) ReleaseItem() {
	p.Lock()
	defer p.Unlock()

	if p.usingItem && isCrossbow(p.stackInHand(p.activeHand)) && p.useTicks >= crossbowChargeTicks {
		p.crossbowCharged = true
	}
	p.usingItem = false
	p.useTicks = 0
}

// Tick advances the item use of the player by one tick.
func (p *Player) Tick() {
	p.Lock()
	defer p.Unlock()

	if p.usingItem {
		p.useTicks++
	}
}

// UsingItem ...
func (p *Player) UsingItem() bool {
	p.RLock()
	defer p.RUnlock()
	return p.usingItem
}

// UseTicks ...
func (p *Player) UseTicks() int {
	p.RLock()
	defer p.RUnlock()
	return p.useTicks
}

// ActiveHand returns the hand of the item being used, or the main hand if no item is being used.
func (p *Player) ActiveHand() profile.Hand {
	p.RLock()
	defer p.RUnlock()
	if !p.usingItem {
		return profile.HandMain
	}
	return p.activeHand
}

// HeldItem returns the launch relevant state of the item in use, or of the item in the main hand if
// no item is in use.
func (p *Player) HeldItem() profile.HeldItem {
	p.RLock()
	defer p.RUnlock()

	hand := profile.HandMain
	if p.usingItem {
		hand = p.activeHand
	}
	stack := p.stackInHand(hand)
	if stack.Empty() {
		return profile.HeldItem{}
	}

	held := profile.HeldItem{
		Kind:      profile.ItemKindOf(stack.Item()),
		Multishot: enchantmentLevel(stack, "multishot"),
	}
	if held.Kind == profile.ItemCrossbow {
		held.Charged = p.crossbowCharged
	}
	return held
}

func (p *Player) stackInHand(hand profile.Hand) item.Stack {
	if hand == profile.HandOff {
		return p.offHand
	}
	return p.mainHand
}

// crossbowChargeTicks is the amount of ticks a crossbow without quick charge takes to load.
const crossbowChargeTicks = 25

func isCrossbow(s item.Stack) bool {
	return !s.Empty() && profile.ItemKindOf(s.Item()) == profile.ItemCrossbow
}

// enchantmentLevel returns the level of the enchantment with the name passed on the stack, or 0.
func enchantmentLevel(s item.Stack, name string) int {
	for _, e := range s.Enchantments() {
		if strings.EqualFold(e.Type().Name(), name) {
			return e.Level()
		}
	}
	return 0
}
