// Package exhaustive implements the combination optimizer as a pruned
// depth-first enumeration over the five filtered slot catalogs.
package exhaustive

import (
	"context"

	"github.com/SoerenD/equipment-calculator-web/internal/engine"
	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
)

// weightSlack relaxes the per-item and partial-sum weight bounds during
// descent. A branch over the true budget may still complete under it
// once later slots stay empty or pick lighter items; the strict budget
// is enforced only on complete five-piece sets.
const weightSlack = 57

// Engine is the exhaustive search implementation of engine.Engine.
type Engine struct{}

// New creates the exhaustive search engine
func New() *Engine {
	return &Engine{}
}

// Ensure Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

// CalculateBestSet finds the highest-scoring equipment set for the
// profile, or fails with engine.ErrInvalidCombination or
// engine.ErrElementMismatch.
func (e *Engine) CalculateBestSet(
	_ context.Context,
	input *engine.CalculateBestSetInput,
) (*engine.CalculateBestSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Profile == nil {
		return nil, errors.InvalidArgument("profile is required")
	}
	if input.Catalogs == nil {
		return nil, errors.InvalidArgument("catalogs are required")
	}

	profile := input.Profile

	// Flag and element pre-checks happen before any catalog is scanned.
	if profile.RangedRequired && profile.RangedForbidden {
		return nil, engine.ErrInvalidCombination
	}
	if profile.RangedRequired && !profile.Ranged {
		return nil, engine.ErrInvalidCombination
	}
	if !targetsSatisfiable(profile) {
		return nil, engine.ErrElementMismatch
	}

	if err := checkSentinels(input.Catalogs); err != nil {
		return nil, err
	}

	return e.search(profile, input.Catalogs)
}

// targetsSatisfiable checks that the unit element and any requested
// attack and defense elements can hold together at all.
func targetsSatisfiable(profile *equipment.UnitProfile) bool {
	var targets []equipment.Element
	if profile.AttackElement != equipment.ElementUnspecified {
		targets = append(targets, profile.AttackElement)
	}
	if profile.DefenseElement != equipment.ElementUnspecified {
		targets = append(targets, profile.DefenseElement)
	}
	return equipment.IsCompatible(profile.Element, targets...)
}

// checkSentinels rejects catalogs missing the mandatory leading
// sentinel. That is a caller contract violation, not a domain failure.
func checkSentinels(catalogs *equipment.Catalogs) error {
	for _, slot := range equipment.Slots {
		catalog := catalogs.BySlot(slot)
		if len(catalog) == 0 || !catalog[0].IsEmpty() {
			return errors.Internalf("catalog for %s is missing its sentinel entry", slot)
		}
	}
	return nil
}

func (e *Engine) search(
	profile *equipment.UnitProfile,
	catalogs *equipment.Catalogs,
) (*engine.CalculateBestSetOutput, error) {
	unit := profile.Element
	slackMax := profile.CarryWeight + weightSlack

	base := filterParams{
		unitElement: unit,
		maxWeight:   slackMax,
		unitRanged:  profile.Ranged,
		forgeLevel:  profile.ForgeLevel,
	}

	// The ranged policy binds the weapon slot; the remaining slots only
	// carry the capability condition from base.
	weaponParams := base
	weaponParams.wanted = equipment.WantedElements(unit, profile.AttackElement)
	weaponParams.rangedRequired = profile.RangedRequired
	weaponParams.rangedForbidden = profile.RangedForbidden

	defenseParams := base
	defenseParams.wanted = equipment.WantedElements(unit, profile.DefenseElement)

	weapons := filterCatalog(catalogs.Weapons, weaponParams)
	armor := filterCatalog(catalogs.Armor, defenseParams)
	shields := filterCatalog(catalogs.Shields, defenseParams)
	helmets := filterCatalog(catalogs.Helmets, base)
	accessories := filterCatalog(catalogs.Accessories, base)

	var (
		best      equipment.EquipmentSet
		bestScore = -1
		found     bool
	)

	for _, w := range weapons {
		if profile.AttackElement != equipment.ElementUnspecified {
			result, ok := equipment.Combine(unit, w.Element)
			if !ok || result != profile.AttackElement {
				continue
			}
		}

		for _, a := range armor {
			if w.Weight+a.Weight > slackMax {
				continue
			}
			if !equipment.IsCompatible(unit, w.Element, a.Element) {
				continue
			}

			for _, s := range shields {
				if w.Weight+a.Weight+s.Weight > slackMax {
					continue
				}
				if !equipment.IsCompatible(unit, w.Element, a.Element, s.Element) {
					continue
				}
				if profile.DefenseElement != equipment.ElementUnspecified {
					result, ok := equipment.CombineAll(unit, a.Element, s.Element)
					if !ok || result != profile.DefenseElement {
						continue
					}
				}

				for _, h := range helmets {
					if w.Weight+a.Weight+s.Weight+h.Weight > slackMax {
						continue
					}
					if !equipment.IsCompatible(unit, w.Element, a.Element, s.Element, h.Element) {
						continue
					}

					for _, acc := range accessories {
						// Terminal check: the true budget, no slack.
						total := w.Weight + a.Weight + s.Weight + h.Weight + acc.Weight
						if total > profile.CarryWeight {
							continue
						}
						if !equipment.IsCompatible(unit, w.Element, a.Element, s.Element, h.Element, acc.Element) {
							continue
						}

						candidate := equipment.EquipmentSet{
							Weapon:    w,
							Armor:     a,
							Shield:    s,
							Helmet:    h,
							Accessory: acc,
						}
						// Strict improvement only, so the first set in
						// catalog order wins all ties.
						if score := candidate.Score(profile.Weights); score > bestScore {
							best = candidate
							bestScore = score
							found = true
						}
					}
				}
			}
		}
	}

	if !found {
		return nil, engine.ErrInvalidCombination
	}

	attackElement, _ := equipment.Combine(unit, best.Weapon.Element)
	defenseElement, _ := equipment.CombineAll(unit, best.Armor.Element, best.Shield.Element)

	return &engine.CalculateBestSetOutput{
		Set:            &best,
		Score:          bestScore,
		TotalWeight:    best.TotalWeight(),
		AttackElement:  attackElement,
		DefenseElement: defenseElement,
	}, nil
}
