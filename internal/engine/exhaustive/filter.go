package exhaustive

import (
	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// filterParams are the per-slot eligibility constraints. maxWeight is
// the relaxed per-item bound (carry weight plus slack), not the final
// budget.
type filterParams struct {
	unitElement     equipment.Element
	maxWeight       int
	unitRanged      bool
	forgeLevel      int
	wanted          []equipment.Element
	rangedRequired  bool
	rangedForbidden bool
}

// filterCatalog returns the candidates of one catalog that satisfy all
// eligibility constraints, preserving catalog order so the sentinel
// stays first. An empty result is valid; the search treats it as "no
// eligible candidate for this slot".
func filterCatalog(catalog equipment.Catalog, p filterParams) []equipment.Equipment {
	var eligible []equipment.Equipment
	for _, item := range catalog {
		if !equipment.IsCompatible(p.unitElement, item.Element) {
			continue
		}
		if p.forgeLevel < item.RequiredLevel {
			continue
		}
		if item.Weight > p.maxWeight {
			continue
		}
		if p.rangedRequired && !item.Ranged {
			continue
		}
		if p.rangedForbidden && item.Ranged {
			continue
		}
		if !p.unitRanged && item.Ranged {
			continue
		}
		if len(p.wanted) > 0 && !containsElement(p.wanted, item.Element) {
			continue
		}
		eligible = append(eligible, item)
	}
	return eligible
}

func containsElement(elements []equipment.Element, e equipment.Element) bool {
	for _, candidate := range elements {
		if candidate == e {
			return true
		}
	}
	return false
}
