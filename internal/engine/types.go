package engine

import (
	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// CalculateBestSetInput contains the unit profile and the catalog
// snapshot to search. Catalogs must carry the sentinel item first in
// every slot and must not change for the duration of the call.
type CalculateBestSetInput struct {
	Profile  *equipment.UnitProfile
	Catalogs *equipment.Catalogs
}

// CalculateBestSetOutput contains the winning set and its derived
// numbers.
type CalculateBestSetOutput struct {
	Set            *equipment.EquipmentSet
	Score          int
	TotalWeight    int
	AttackElement  equipment.Element
	DefenseElement equipment.Element
}
