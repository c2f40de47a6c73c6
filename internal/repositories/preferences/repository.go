// Package preferences provides the interface for saved calculator
// preference persistence
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/SoerenD/equipment-calculator-web/internal/repositories/preferences Repository

import (
	"context"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// Repository defines the interface for preference persistence
type Repository interface {
	// Get retrieves the saved preferences for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.NotFound if no preferences exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores the preferences for a player, creating or replacing
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the saved preferences for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.NotFound if no preferences exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting preferences
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting preferences
type GetOutput struct {
	Preferences *equipment.Preferences
}

// SaveInput defines the input for saving preferences
type SaveInput struct {
	Preferences *equipment.Preferences
}

// SaveOutput defines the output for saving preferences
type SaveOutput struct {
	Preferences *equipment.Preferences
}

// DeleteInput defines the input for deleting preferences
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting preferences
type DeleteOutput struct{}
