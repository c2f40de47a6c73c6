package catalogs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoerenD/equipment-calculator-web/internal/catalogs"
	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

func TestNewStoreStartsEmpty(t *testing.T) {
	store := catalogs.NewStore()

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot)
	for _, slot := range equipment.Slots {
		catalog := snapshot.BySlot(slot)
		require.Len(t, catalog, 1)
		assert.True(t, catalog[0].IsEmpty())
	}
}

func TestReplace(t *testing.T) {
	store := catalogs.NewStore()

	next := equipment.EmptyCatalogs()
	next.Weapons = append(next.Weapons, equipment.Equipment{Name: "sword", Weight: 5, Element: equipment.ElementNone})
	store.Replace(next)

	assert.Same(t, next, store.Snapshot())
	assert.Len(t, store.Snapshot().Weapons, 2)
}

func TestReplaceIgnoresNil(t *testing.T) {
	store := catalogs.NewStore()
	before := store.Snapshot()

	store.Replace(nil)

	assert.Same(t, before, store.Snapshot())
}

// A reader must always observe a complete snapshot, old or new, while
// replacements race it.
func TestSnapshotNeverPartial(t *testing.T) {
	store := catalogs.NewStore()

	full := equipment.EmptyCatalogs()
	full.Weapons = append(full.Weapons, equipment.Equipment{Name: "sword"})
	full.Armor = append(full.Armor, equipment.Equipment{Name: "plate"})
	full.Shields = append(full.Shields, equipment.Equipment{Name: "buckler"})
	full.Helmets = append(full.Helmets, equipment.Equipment{Name: "cap"})
	full.Accessories = append(full.Accessories, equipment.Equipment{Name: "ring"})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				store.Replace(full)
			} else {
				store.Replace(equipment.EmptyCatalogs())
			}
		}
		close(stop)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			snapshot := store.Snapshot()
			counts := snapshot.Counts()
			// Either all five slots grew or none did.
			grown := counts[equipment.SlotWeapon] > 1
			for _, slot := range equipment.Slots {
				assert.Equal(t, grown, counts[slot] > 1, "partial snapshot observed")
			}
			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	wg.Wait()
}
