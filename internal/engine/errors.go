package engine

import (
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
)

// The two domain failures the optimizer can produce. They carry fixed
// messages and distinct codes so callers can tell them apart with
// errors.Is and surface them with different HTTP statuses.
var (
	// ErrElementMismatch means the requested unit, attack and defense
	// elements cannot hold together under the element rules, regardless
	// of catalog contents.
	ErrElementMismatch = errors.New(errors.CodeInvalidArgument,
		"unit element is not compatible with the requested attack and defense elements")

	// ErrInvalidCombination means the ranged policy flags contradict
	// each other or the unit, or no five-piece combination satisfies
	// all constraints.
	ErrInvalidCombination = errors.New(errors.CodeFailedPrecondition,
		"no valid equipment combination exists for the given constraints")
)
