// Package engine defines the interface for the equipment combination
// optimizer.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/SoerenD/equipment-calculator-web/internal/engine Engine

import (
	"context"
)

// Engine calculates the best equipment set for a unit profile against
// an immutable catalog snapshot. Implementations are pure: the same
// profile and catalogs always produce the same result, and catalog
// entries are never mutated.
type Engine interface {
	CalculateBestSet(ctx context.Context, input *CalculateBestSetInput) (*CalculateBestSetOutput, error)
}
