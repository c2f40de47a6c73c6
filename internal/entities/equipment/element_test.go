package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

func TestParseElement(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    equipment.Element
		wantErr bool
	}{
		{name: "empty string is unspecified", input: "", want: equipment.ElementUnspecified},
		{name: "uppercase", input: "FIRE", want: equipment.ElementFire},
		{name: "lowercase", input: "earth_ice", want: equipment.ElementEarthIce},
		{name: "mixed case", input: "Air", want: equipment.ElementAir},
		{name: "unknown", input: "LAVA", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := equipment.ParseElement(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestElementFromCode(t *testing.T) {
	for code, want := range equipment.AllElements {
		got, err := equipment.ElementFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := equipment.ElementFromCode(len(equipment.AllElements))
	assert.Error(t, err)
	_, err = equipment.ElementFromCode(-1)
	assert.Error(t, err)
}

func TestIsCompatible(t *testing.T) {
	testCases := []struct {
		name  string
		unit  equipment.Element
		items []equipment.Element
		want  bool
	}{
		{name: "none with anything", unit: equipment.ElementNone, items: []equipment.Element{equipment.ElementFire, equipment.ElementAir}, want: true},
		{name: "item without element", unit: equipment.ElementFire, items: []equipment.Element{equipment.ElementNone}, want: true},
		{name: "same element", unit: equipment.ElementIce, items: []equipment.Element{equipment.ElementIce}, want: true},
		{name: "fire with air", unit: equipment.ElementFire, items: []equipment.Element{equipment.ElementAir}, want: true},
		{name: "earth with ice", unit: equipment.ElementEarth, items: []equipment.Element{equipment.ElementIce}, want: true},
		{name: "composite with its component", unit: equipment.ElementFireAir, items: []equipment.Element{equipment.ElementFire}, want: true},
		{name: "composite with foreign component", unit: equipment.ElementFireAir, items: []equipment.Element{equipment.ElementEarth}, want: false},
		{name: "fire with ice", unit: equipment.ElementFire, items: []equipment.Element{equipment.ElementIce}, want: false},
		{name: "fire with earth", unit: equipment.ElementFire, items: []equipment.Element{equipment.ElementEarth}, want: false},
		{name: "air with earth", unit: equipment.ElementAir, items: []equipment.Element{equipment.ElementEarth}, want: false},
		{name: "cross composites", unit: equipment.ElementFireAir, items: []equipment.Element{equipment.ElementEarthIce}, want: false},
		{name: "no items", unit: equipment.ElementFire, items: nil, want: true},
		{name: "all items pairwise checked", unit: equipment.ElementNone, items: []equipment.Element{equipment.ElementFire, equipment.ElementIce}, want: false},
		{name: "compatible group of three", unit: equipment.ElementFire, items: []equipment.Element{equipment.ElementAir, equipment.ElementNone, equipment.ElementFire}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, equipment.IsCompatible(tc.unit, tc.items...))
		})
	}
}

func TestCombine(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   equipment.Element
		want   equipment.Element
		wantOK bool
	}{
		{name: "none is left identity", a: equipment.ElementNone, b: equipment.ElementEarth, want: equipment.ElementEarth, wantOK: true},
		{name: "none is right identity", a: equipment.ElementAir, b: equipment.ElementNone, want: equipment.ElementAir, wantOK: true},
		{name: "same yields same", a: equipment.ElementIce, b: equipment.ElementIce, want: equipment.ElementIce, wantOK: true},
		{name: "fire and air fuse", a: equipment.ElementFire, b: equipment.ElementAir, want: equipment.ElementFireAir, wantOK: true},
		{name: "air and fire fuse", a: equipment.ElementAir, b: equipment.ElementFire, want: equipment.ElementFireAir, wantOK: true},
		{name: "earth and ice fuse", a: equipment.ElementEarth, b: equipment.ElementIce, want: equipment.ElementEarthIce, wantOK: true},
		{name: "composite absorbs component", a: equipment.ElementFireAir, b: equipment.ElementAir, want: equipment.ElementFireAir, wantOK: true},
		{name: "earth ice absorbs earth", a: equipment.ElementEarthIce, b: equipment.ElementEarth, want: equipment.ElementEarthIce, wantOK: true},
		{name: "fire and ice undefined", a: equipment.ElementFire, b: equipment.ElementIce, wantOK: false},
		{name: "fire and earth undefined", a: equipment.ElementFire, b: equipment.ElementEarth, wantOK: false},
		{name: "cross composite undefined", a: equipment.ElementFireAir, b: equipment.ElementIce, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := equipment.Combine(tc.a, tc.b)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// Every compatible pair must have a defined combination result, and
// every incompatible pair must have none.
func TestCombineClosedOverCompatibility(t *testing.T) {
	for _, a := range equipment.AllElements {
		for _, b := range equipment.AllElements {
			_, ok := equipment.Combine(a, b)
			assert.Equal(t, equipment.IsCompatible(a, b), ok, "elements %s and %s", a, b)
		}
	}
}

func TestCombineAll(t *testing.T) {
	t.Run("folds toward composite", func(t *testing.T) {
		got, ok := equipment.CombineAll(equipment.ElementFire, equipment.ElementFire, equipment.ElementAir)
		require.True(t, ok)
		assert.Equal(t, equipment.ElementFireAir, got)
	})

	t.Run("composite intermediate absorbs further components", func(t *testing.T) {
		got, ok := equipment.CombineAll(equipment.ElementNone, equipment.ElementEarth, equipment.ElementIce, equipment.ElementEarth)
		require.True(t, ok)
		assert.Equal(t, equipment.ElementEarthIce, got)
	})

	t.Run("fails on undefined step", func(t *testing.T) {
		_, ok := equipment.CombineAll(equipment.ElementFire, equipment.ElementEarth)
		assert.False(t, ok)
	})

	t.Run("no items yields unit element", func(t *testing.T) {
		got, ok := equipment.CombineAll(equipment.ElementIce)
		require.True(t, ok)
		assert.Equal(t, equipment.ElementIce, got)
	})
}

func TestWantedElements(t *testing.T) {
	testCases := []struct {
		name   string
		unit   equipment.Element
		target equipment.Element
		want   []equipment.Element
	}{
		{
			name:   "no target means no restriction",
			unit:   equipment.ElementFire,
			target: equipment.ElementUnspecified,
			want:   nil,
		},
		{
			name:   "neutral unit targeting fire",
			unit:   equipment.ElementNone,
			target: equipment.ElementFire,
			want:   []equipment.Element{equipment.ElementFire, equipment.ElementNone},
		},
		{
			name:   "fire unit targeting composite",
			unit:   equipment.ElementFire,
			target: equipment.ElementFireAir,
			want:   []equipment.Element{equipment.ElementAir, equipment.ElementFireAir, equipment.ElementFire, equipment.ElementNone},
		},
		{
			name:   "neutral unit targeting composite includes components",
			unit:   equipment.ElementNone,
			target: equipment.ElementEarthIce,
			want:   []equipment.Element{equipment.ElementEarthIce, equipment.ElementEarth, equipment.ElementIce, equipment.ElementNone},
		},
		{
			name:   "fire unit targeting fire keeps empty slot possible",
			unit:   equipment.ElementFire,
			target: equipment.ElementFire,
			want:   []equipment.Element{equipment.ElementNone, equipment.ElementFire},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, equipment.WantedElements(tc.unit, tc.target))
		})
	}
}

func TestElementIsValid(t *testing.T) {
	for _, e := range equipment.AllElements {
		assert.True(t, e.IsValid(), "expected %s to be valid", e)
	}
	assert.False(t, equipment.ElementUnspecified.IsValid())
	assert.False(t, equipment.Element("LAVA").IsValid())
}
