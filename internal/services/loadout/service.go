// Package loadout defines the interface for equipment loadout
// operations
package loadout

//go:generate mockgen -destination=mock/mock_service.go -package=loadoutmock github.com/SoerenD/equipment-calculator-web/internal/services/loadout Service

import (
	"context"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// Service defines the interface for loadout operations
type Service interface {
	// Calculation
	CalculateLoadout(ctx context.Context, input *CalculateLoadoutInput) (*CalculateLoadoutOutput, error)

	// Catalog lifecycle
	RefreshCatalogs(ctx context.Context, input *RefreshCatalogsInput) (*RefreshCatalogsOutput, error)

	// Saved preferences
	GetPreferences(ctx context.Context, input *GetPreferencesInput) (*GetPreferencesOutput, error)
	SavePreferences(ctx context.Context, input *SavePreferencesInput) (*SavePreferencesOutput, error)
	DeletePreferences(ctx context.Context, input *DeletePreferencesInput) (*DeletePreferencesOutput, error)
}

// CalculateLoadoutInput defines the request for calculating the best
// equipment set for a unit
type CalculateLoadoutInput struct {
	Profile *equipment.UnitProfile
}

// CalculateLoadoutOutput defines the response for a calculation
type CalculateLoadoutOutput struct {
	Set            *equipment.EquipmentSet
	Score          int
	TotalWeight    int
	AttackElement  equipment.Element
	DefenseElement equipment.Element
	FromCache      bool
}

// RefreshCatalogsInput defines the request for reloading the equipment
// catalogs
type RefreshCatalogsInput struct{}

// RefreshCatalogsOutput defines the response for a catalog refresh
type RefreshCatalogsOutput struct {
	Counts map[equipment.Slot]int
}

// GetPreferencesInput defines the request for getting saved preferences
type GetPreferencesInput struct {
	PlayerID string
}

// GetPreferencesOutput defines the response for getting saved preferences
type GetPreferencesOutput struct {
	Preferences *equipment.Preferences
}

// SavePreferencesInput defines the request for saving preferences
type SavePreferencesInput struct {
	PlayerID string
	Profile  equipment.UnitProfile
}

// SavePreferencesOutput defines the response for saving preferences
type SavePreferencesOutput struct {
	Preferences *equipment.Preferences
}

// DeletePreferencesInput defines the request for deleting preferences
type DeletePreferencesInput struct {
	PlayerID string
}

// DeletePreferencesOutput defines the response for deleting preferences
type DeletePreferencesOutput struct{}
