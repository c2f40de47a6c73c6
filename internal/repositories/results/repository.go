// Package results provides the interface for the calculation result
// cache
package results

//go:generate mockgen -destination=mock/mock_repository.go -package=resultsmock github.com/SoerenD/equipment-calculator-web/internal/repositories/results Repository

import (
	"context"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// Result is the cached outcome of a calculation. It mirrors what the
// calculator returns so a cache hit needs no recomputation.
type Result struct {
	Set            *equipment.EquipmentSet `json:"set"`
	Score          int                     `json:"score"`
	TotalWeight    int                     `json:"total_weight"`
	AttackElement  equipment.Element       `json:"attack_element"`
	DefenseElement equipment.Element       `json:"defense_element"`
}

// Repository defines the interface for the result cache.
//
// The cache is generation-keyed: every entry is stored under the
// current generation, and InvalidateAll bumps the generation so all
// prior entries become unreachable (and expire via TTL).
type Repository interface {
	// Get retrieves a cached result by request key
	// Returns errors.InvalidArgument for empty keys
	// Returns errors.NotFound on a cache miss
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a result under the generation named in the input
	// Returns errors.InvalidArgument for validation failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Generation reads the current cache generation. Callers capture it
	// before computing so a Set that finishes after an invalidation
	// lands in the orphaned generation instead of the live one.
	Generation(ctx context.Context, input GenerationInput) (*GenerationOutput, error)

	// InvalidateAll bumps the cache generation, orphaning every
	// previously stored entry
	InvalidateAll(ctx context.Context, input InvalidateAllInput) (*InvalidateAllOutput, error)
}

// GetInput defines the input for a cache lookup
type GetInput struct {
	Key string
}

// GetOutput defines the output for a cache lookup
type GetOutput struct {
	Result *Result
}

// SetInput defines the input for storing a result
type SetInput struct {
	Key        string
	Generation int64
	Result     *Result
}

// SetOutput defines the output for storing a result
type SetOutput struct{}

// GenerationInput defines the input for reading the cache generation
type GenerationInput struct{}

// GenerationOutput defines the output for reading the cache generation
type GenerationOutput struct {
	Generation int64
}

// InvalidateAllInput defines the input for invalidating the cache
type InvalidateAllInput struct{}

// InvalidateAllOutput defines the output for invalidating the cache
type InvalidateAllOutput struct {
	Generation int64
}
