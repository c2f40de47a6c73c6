package equipment

import (
	"fmt"
	"strings"
)

// Element is the elemental affinity of a unit or a piece of equipment.
// The set is closed: the four base elements, the two composites they can
// form, NONE for neutral items, and the empty string for "no element
// requested" in optional request fields.
type Element string

// Element constants
const (
	ElementUnspecified Element = ""
	ElementNone        Element = "NONE"
	ElementFire        Element = "FIRE"
	ElementIce         Element = "ICE"
	ElementAir         Element = "AIR"
	ElementEarth       Element = "EARTH"
	ElementFireAir     Element = "FIRE_AIR"
	ElementEarthIce    Element = "EARTH_ICE"
)

// AllElements lists every concrete element value in wire order. The
// catalog source encodes elements as their index into this list.
var AllElements = []Element{
	ElementNone,
	ElementFire,
	ElementIce,
	ElementAir,
	ElementEarth,
	ElementFireAir,
	ElementEarthIce,
}

// ParseElement converts a request string into an Element. Matching is
// case-insensitive; the empty string parses to ElementUnspecified.
func ParseElement(s string) (Element, error) {
	if s == "" {
		return ElementUnspecified, nil
	}
	upper := Element(strings.ToUpper(s))
	for _, e := range AllElements {
		if upper == e {
			return e, nil
		}
	}
	return ElementUnspecified, fmt.Errorf("unknown element %q", s)
}

// IsValid reports whether e is one of the concrete element values.
// ElementUnspecified is not valid: it only stands in for an absent
// optional field.
func (e Element) IsValid() bool {
	for _, known := range AllElements {
		if e == known {
			return true
		}
	}
	return false
}

// ElementFromCode converts a wire-format element code into an Element.
func ElementFromCode(code int) (Element, error) {
	if code < 0 || code >= len(AllElements) {
		return ElementUnspecified, fmt.Errorf("unknown element code %d", code)
	}
	return AllElements[code], nil
}

// compatible reports whether two elements may appear together on one
// unit. NONE goes with everything, every element goes with itself, the
// two composite-forming pairs go together, and a composite accepts its
// own components. Everything else clashes.
func compatible(a, b Element) bool {
	if a == b || a == ElementNone || b == ElementNone {
		return true
	}
	switch {
	case pairIs(a, b, ElementFire, ElementAir):
		return true
	case pairIs(a, b, ElementEarth, ElementIce):
		return true
	case pairIs(a, b, ElementFireAir, ElementFire), pairIs(a, b, ElementFireAir, ElementAir):
		return true
	case pairIs(a, b, ElementEarthIce, ElementEarth), pairIs(a, b, ElementEarthIce, ElementIce):
		return true
	}
	return false
}

func pairIs(a, b, x, y Element) bool {
	return (a == x && b == y) || (a == y && b == x)
}

// IsCompatible reports whether a unit with the given native element can
// carry the given item elements together. Every pairwise combination
// across the whole group, the unit's own element included, must be
// compatible.
func IsCompatible(unit Element, items ...Element) bool {
	group := make([]Element, 0, len(items)+1)
	group = append(group, unit)
	group = append(group, items...)

	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			if !compatible(group[i], group[j]) {
				return false
			}
		}
	}
	return true
}

// Combine yields the resultant element of a unit element interacting
// with an item element. NONE is the identity, same meets same, the two
// composite-forming pairs fuse, and a composite absorbs its own
// components. Incompatible pairs have no resultant and report ok=false;
// callers are expected to have validated compatibility first.
func Combine(a, b Element) (Element, bool) {
	switch {
	case a == ElementNone:
		return b, true
	case b == ElementNone:
		return a, true
	case a == b:
		return a, true
	case pairIs(a, b, ElementFire, ElementAir):
		return ElementFireAir, true
	case pairIs(a, b, ElementEarth, ElementIce):
		return ElementEarthIce, true
	case pairIs(a, b, ElementFireAir, ElementFire), pairIs(a, b, ElementFireAir, ElementAir):
		return ElementFireAir, true
	case pairIs(a, b, ElementEarthIce, ElementEarth), pairIs(a, b, ElementEarthIce, ElementIce):
		return ElementEarthIce, true
	}
	return ElementUnspecified, false
}

// CombineAll folds Combine over the unit element and the given item
// elements, left to right. It reports ok=false as soon as a fold step
// has no defined resultant.
func CombineAll(unit Element, items ...Element) (Element, bool) {
	result := unit
	for _, item := range items {
		next, ok := Combine(result, item)
		if !ok {
			return ElementUnspecified, false
		}
		result = next
	}
	return result, true
}

// WantedElements yields the item elements that, combined with the unit
// element, could take part in producing the requested target element.
// Used to pre-filter catalogs before the exact combine checks during
// the search. An unspecified target yields nil, meaning no restriction.
func WantedElements(unit, target Element) []Element {
	if target == ElementUnspecified {
		return nil
	}

	var wanted []Element
	for _, e := range AllElements {
		if result, ok := Combine(unit, e); ok && result == target {
			wanted = append(wanted, e)
		}
	}

	// Components of a composite target cannot produce it alone but can
	// jointly, across two slots.
	switch target {
	case ElementFireAir:
		wanted = appendMissing(wanted, ElementFire, ElementAir)
	case ElementEarthIce:
		wanted = appendMissing(wanted, ElementEarth, ElementIce)
	}

	// NONE stays eligible: the target can be reached with a slot left
	// empty, and the sentinel must never be filtered away. The exact
	// combine checks during the search still enforce the target.
	wanted = appendMissing(wanted, ElementNone)

	return wanted
}

func appendMissing(elements []Element, add ...Element) []Element {
	for _, a := range add {
		found := false
		for _, e := range elements {
			if e == a {
				found = true
				break
			}
		}
		if !found {
			elements = append(elements, a)
		}
	}
	return elements
}
