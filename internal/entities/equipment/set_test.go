package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

func TestEmptyItem(t *testing.T) {
	sentinel := equipment.EmptyItem()

	assert.Zero(t, sentinel.AttackPoints)
	assert.Zero(t, sentinel.Weight)
	assert.Equal(t, equipment.ElementNone, sentinel.Element)
	assert.False(t, sentinel.Ranged)
	assert.True(t, sentinel.IsEmpty())
	assert.False(t, equipment.Equipment{Name: "club", Weight: 2}.IsEmpty())
}

func TestEmptyCatalogs(t *testing.T) {
	catalogs := equipment.EmptyCatalogs()

	for _, slot := range equipment.Slots {
		catalog := catalogs.BySlot(slot)
		assert.Len(t, catalog, 1, "slot %s", slot)
		assert.True(t, catalog[0].IsEmpty(), "slot %s", slot)
	}
	assert.Equal(t, 1, catalogs.Counts()[equipment.SlotWeapon])
}

func TestEquipmentSetTotals(t *testing.T) {
	set := equipment.EquipmentSet{
		Weapon:    equipment.Equipment{Name: "bow", AttackPoints: 10, Weight: 5},
		Armor:     equipment.Equipment{Name: "plate", VitalityPoints: 10, Weight: 5},
		Shield:    equipment.Equipment{Name: "buckler", HealthPoints: 5, Weight: 3},
		Helmet:    equipment.Equipment{Name: "cap", ManaPoints: 5, Weight: 2},
		Accessory: equipment.EmptyItem(),
	}

	assert.Equal(t, 15, set.TotalWeight())
	assert.Equal(t, 10, set.TotalAttackPoints())
	assert.Equal(t, 10, set.TotalVitalityPoints())
	assert.Equal(t, 5, set.TotalHealthPoints())
	assert.Equal(t, 5, set.TotalManaPoints())
}

func TestEquipmentSetScore(t *testing.T) {
	set := equipment.EquipmentSet{
		Weapon: equipment.Equipment{AttackPoints: 10},
		Armor:  equipment.Equipment{VitalityPoints: 4},
		Helmet: equipment.Equipment{ManaPoints: 3},
	}

	testCases := []struct {
		name    string
		weights equipment.ScoringWeights
		want    int
	}{
		{name: "all ones", weights: equipment.ScoringWeights{AttackPoints: 1, VitalityPoints: 1, HealthPoints: 1, ManaPoints: 1}, want: 17},
		{name: "attack only", weights: equipment.ScoringWeights{AttackPoints: 2}, want: 20},
		{name: "zero weights", weights: equipment.ScoringWeights{}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, set.Score(tc.weights))
		})
	}
}
