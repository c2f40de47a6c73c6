package catalog

import (
	"fmt"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// catalogDocument is the wire format of the catalog source: one JSON
// document with the five item arrays. Elements come as integer codes in
// enum order.
type catalogDocument struct {
	Weapons     []itemRecord `json:"weapons"`
	Armor       []itemRecord `json:"armor"`
	Shields     []itemRecord `json:"shields"`
	Helmets     []itemRecord `json:"helmets"`
	Accessories []itemRecord `json:"accessories"`
}

type itemRecord struct {
	Name          string `json:"name"`
	AP            int    `json:"ap"`
	VP            int    `json:"vp"`
	HP            int    `json:"hp"`
	MP            int    `json:"mp"`
	Weight        int    `json:"weight"`
	Ranged        bool   `json:"ranged"`
	Element       int    `json:"element"`
	RequiredLevel int    `json:"required_level"`
}

func (d *catalogDocument) toCatalogs() (*equipment.Catalogs, error) {
	weapons, err := toCatalog(d.Weapons)
	if err != nil {
		return nil, fmt.Errorf("weapons: %w", err)
	}
	armor, err := toCatalog(d.Armor)
	if err != nil {
		return nil, fmt.Errorf("armor: %w", err)
	}
	shields, err := toCatalog(d.Shields)
	if err != nil {
		return nil, fmt.Errorf("shields: %w", err)
	}
	helmets, err := toCatalog(d.Helmets)
	if err != nil {
		return nil, fmt.Errorf("helmets: %w", err)
	}
	accessories, err := toCatalog(d.Accessories)
	if err != nil {
		return nil, fmt.Errorf("accessories: %w", err)
	}

	return &equipment.Catalogs{
		Weapons:     weapons,
		Armor:       armor,
		Shields:     shields,
		Helmets:     helmets,
		Accessories: accessories,
	}, nil
}

// toCatalog converts one wire array into a domain catalog, prepending
// the sentinel so the search can always leave the slot empty.
func toCatalog(records []itemRecord) (equipment.Catalog, error) {
	catalog := equipment.Catalog{equipment.EmptyItem()}
	for i, record := range records {
		element, err := equipment.ElementFromCode(record.Element)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, record.Name, err)
		}
		catalog = append(catalog, equipment.Equipment{
			Name:           record.Name,
			AttackPoints:   record.AP,
			VitalityPoints: record.VP,
			HealthPoints:   record.HP,
			ManaPoints:     record.MP,
			Weight:         record.Weight,
			Ranged:         record.Ranged,
			Element:        element,
			RequiredLevel:  record.RequiredLevel,
		})
	}
	return catalog, nil
}
