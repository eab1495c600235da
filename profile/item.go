package profile

import "github.com/df-mc/dragonfly/server/world"

// ItemKind is the category of a held item that launch profiles are selected by.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemBow
	ItemCrossbow
	ItemTrident
	ItemWindCharge
	ItemExperienceBottle
	ItemSplashPotion
	ItemLingeringPotion
	ItemEnderPearl
	ItemSnowball
	ItemEgg
)

// itemNames holds the namespaced identifier of every kind, indexed by kind.
var itemNames = [...]string{
	ItemNone:             "none",
	ItemBow:              "minecraft:bow",
	ItemCrossbow:         "minecraft:crossbow",
	ItemTrident:          "minecraft:trident",
	ItemWindCharge:       "minecraft:wind_charge",
	ItemExperienceBottle: "minecraft:experience_bottle",
	ItemSplashPotion:     "minecraft:splash_potion",
	ItemLingeringPotion:  "minecraft:lingering_potion",
	ItemEnderPearl:       "minecraft:ender_pearl",
	ItemSnowball:         "minecraft:snowball",
	ItemEgg:              "minecraft:egg",
}

var itemKindsByName = func() map[string]ItemKind {
	m := make(map[string]ItemKind, len(itemNames)-1)
	for k, name := range itemNames[ItemBow:] {
		m[name] = ItemKind(k) + ItemBow
	}
	return m
}()

// String returns the namespaced identifier of the item kind, or "none".
func (k ItemKind) String() string {
	if int(k) >= len(itemNames) {
		return "none"
	}
	return itemNames[k]
}

// ItemKindOf returns the kind of the item passed, or ItemNone if no launch profile exists for it.
func ItemKindOf(it world.Item) ItemKind {
	if it == nil {
		return ItemNone
	}
	name, _ := it.EncodeItem()
	return ItemKindByName(name)
}

// ItemKindByName returns the kind of the item with the namespaced identifier passed.
func ItemKindByName(name string) ItemKind {
	return itemKindsByName[name]
}

// HeldItem is the state of the item in the hand of an actor that matters to launch profiles.
type HeldItem struct {
	Kind ItemKind
	// Charged is true for a crossbow that has been loaded.
	Charged bool
	// Multishot is the level of the multishot enchantment on the item.
	Multishot int
}

// Hand is the hand an item is used with.
type Hand uint8

const (
	HandMain Hand = iota
	HandOff
)

// Arm is the arm a player uses as their main hand.
type Arm uint8

const (
	ArmRight Arm = iota
	ArmLeft
)
