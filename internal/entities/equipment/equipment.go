// Package equipment holds the domain values for the equipment
// calculator: elements and their combination rules, equipment pieces,
// per-slot catalogs, unit profiles and the calculated equipment set.
package equipment

// Slot identifies one of the five equipment categories of a set.
type Slot string

// Slot constants
const (
	SlotWeapon    Slot = "SLOT_WEAPON"
	SlotArmor     Slot = "SLOT_ARMOR"
	SlotShield    Slot = "SLOT_SHIELD"
	SlotHelmet    Slot = "SLOT_HELMET"
	SlotAccessory Slot = "SLOT_ACCESSORY"
)

// Slots lists the five slots in search order.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotShield, SlotHelmet, SlotAccessory}

// Equipment is one catalog row: an immutable piece of gear with its
// combat stats, weight, elemental affinity and the forge level needed
// to use it.
type Equipment struct {
	Name           string  `json:"name"`
	AttackPoints   int     `json:"attack_points"`
	VitalityPoints int     `json:"vitality_points"`
	HealthPoints   int     `json:"health_points"`
	ManaPoints     int     `json:"mana_points"`
	Weight         int     `json:"weight"`
	Ranged         bool    `json:"ranged"`
	Element        Element `json:"element"`
	RequiredLevel  int     `json:"required_level"`
}

// IsEmpty reports whether this is the sentinel "nothing equipped" item.
func (e Equipment) IsEmpty() bool {
	return e == EmptyItem()
}

// EmptyItem returns the sentinel item that represents an empty slot:
// zero stats, zero weight, no element, not ranged. Every catalog
// carries it as its first entry so the search can leave a slot empty
// without special-casing.
func EmptyItem() Equipment {
	return Equipment{Name: "nothing", Element: ElementNone}
}

// Catalog is the ordered candidate list for one slot. Order is
// significant: the sentinel comes first, and the search breaks score
// ties in favor of earlier entries.
type Catalog []Equipment

// Catalogs is one immutable snapshot of the five per-slot catalogs.
// Snapshots are replaced wholesale on refresh, never mutated.
type Catalogs struct {
	Weapons     Catalog `json:"weapons"`
	Armor       Catalog `json:"armor"`
	Shields     Catalog `json:"shields"`
	Helmets     Catalog `json:"helmets"`
	Accessories Catalog `json:"accessories"`
}

// EmptyCatalogs returns a snapshot holding only the sentinel in every
// slot. Used as the initial state before the first refresh and as the
// last-resort fallback when no catalog source is reachable.
func EmptyCatalogs() *Catalogs {
	return &Catalogs{
		Weapons:     Catalog{EmptyItem()},
		Armor:       Catalog{EmptyItem()},
		Shields:     Catalog{EmptyItem()},
		Helmets:     Catalog{EmptyItem()},
		Accessories: Catalog{EmptyItem()},
	}
}

// BySlot returns the catalog for the given slot.
func (c *Catalogs) BySlot(slot Slot) Catalog {
	switch slot {
	case SlotWeapon:
		return c.Weapons
	case SlotArmor:
		return c.Armor
	case SlotShield:
		return c.Shields
	case SlotHelmet:
		return c.Helmets
	case SlotAccessory:
		return c.Accessories
	}
	return nil
}

// Counts returns the number of entries per slot, sentinel included.
func (c *Catalogs) Counts() map[Slot]int {
	return map[Slot]int{
		SlotWeapon:    len(c.Weapons),
		SlotArmor:     len(c.Armor),
		SlotShield:    len(c.Shields),
		SlotHelmet:    len(c.Helmets),
		SlotAccessory: len(c.Accessories),
	}
}
