// Package loadout implements the loadout orchestrator: input
// validation, the result cache, the catalog snapshot and the
// calculation engine behind one service interface.
package loadout

import (
	"context"
	"log/slog"

	"github.com/SoerenD/equipment-calculator-web/internal/catalogs"
	catalogclient "github.com/SoerenD/equipment-calculator-web/internal/clients/catalog"
	"github.com/SoerenD/equipment-calculator-web/internal/engine"
	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
	"github.com/SoerenD/equipment-calculator-web/internal/repositories/preferences"
	"github.com/SoerenD/equipment-calculator-web/internal/repositories/results"
	loadoutsvc "github.com/SoerenD/equipment-calculator-web/internal/services/loadout"
)

// Config holds the dependencies for the loadout orchestrator
type Config struct {
	Engine          engine.Engine
	CatalogClient   catalogclient.Client
	CatalogStore    *catalogs.Store
	PreferencesRepo preferences.Repository
	ResultsRepo     results.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CatalogClient == nil {
		vb.RequiredField("CatalogClient")
	}
	if c.CatalogStore == nil {
		vb.RequiredField("CatalogStore")
	}
	if c.PreferencesRepo == nil {
		vb.RequiredField("PreferencesRepo")
	}
	if c.ResultsRepo == nil {
		vb.RequiredField("ResultsRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	engine          engine.Engine
	catalogClient   catalogclient.Client
	catalogStore    *catalogs.Store
	preferencesRepo preferences.Repository
	resultsRepo     results.Repository
}

// NewOrchestrator creates a new loadout orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (loadoutsvc.Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:          cfg.Engine,
		catalogClient:   cfg.CatalogClient,
		catalogStore:    cfg.CatalogStore,
		preferencesRepo: cfg.PreferencesRepo,
		resultsRepo:     cfg.ResultsRepo,
	}, nil
}

func (o *orchestrator) CalculateLoadout(ctx context.Context, input *loadoutsvc.CalculateLoadoutInput) (*loadoutsvc.CalculateLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Profile == nil {
		return nil, errors.InvalidArgument("profile cannot be nil")
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}

	// The cache is best-effort: any failure here falls through to a
	// fresh calculation.
	key := results.RequestKey(input.Profile)
	if key != "" {
		cached, err := o.resultsRepo.Get(ctx, results.GetInput{Key: key})
		if err == nil {
			return &loadoutsvc.CalculateLoadoutOutput{
				Set:            cached.Result.Set,
				Score:          cached.Result.Score,
				TotalWeight:    cached.Result.TotalWeight,
				AttackElement:  cached.Result.AttackElement,
				DefenseElement: cached.Result.DefenseElement,
				FromCache:      true,
			}, nil
		}
		if !errors.IsNotFound(err) {
			slog.Warn("result cache lookup failed", "error", err)
		}
	}

	// The generation is read before the snapshot. If a refresh lands
	// while the calculation runs, the result was computed against the
	// old catalogs and must be stored in the generation the refresh
	// orphaned, not the live one.
	gen, genErr := o.resultsRepo.Generation(ctx, results.GenerationInput{})
	if genErr != nil {
		slog.Warn("result cache generation read failed", "error", genErr)
	}

	output, err := o.engine.CalculateBestSet(ctx, &engine.CalculateBestSetInput{
		Profile:  input.Profile,
		Catalogs: o.catalogStore.Snapshot(),
	})
	if err != nil {
		return nil, err
	}

	if key != "" && genErr == nil {
		_, err := o.resultsRepo.Set(ctx, results.SetInput{
			Key:        key,
			Generation: gen.Generation,
			Result: &results.Result{
				Set:            output.Set,
				Score:          output.Score,
				TotalWeight:    output.TotalWeight,
				AttackElement:  output.AttackElement,
				DefenseElement: output.DefenseElement,
			},
		})
		if err != nil {
			slog.Warn("result cache store failed", "error", err)
		}
	}

	return &loadoutsvc.CalculateLoadoutOutput{
		Set:            output.Set,
		Score:          output.Score,
		TotalWeight:    output.TotalWeight,
		AttackElement:  output.AttackElement,
		DefenseElement: output.DefenseElement,
	}, nil
}

func (o *orchestrator) RefreshCatalogs(ctx context.Context, input *loadoutsvc.RefreshCatalogsInput) (*loadoutsvc.RefreshCatalogsOutput, error) {
	fetched, err := o.catalogClient.FetchCatalogs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch catalogs")
	}

	o.catalogStore.Replace(fetched)

	// Cached results were computed against the previous snapshot.
	// An invalidation failure is not fatal: orphaned entries drain
	// via TTL.
	if _, err := o.resultsRepo.InvalidateAll(ctx, results.InvalidateAllInput{}); err != nil {
		slog.Warn("result cache invalidation failed", "error", err)
	}

	counts := fetched.Counts()
	slog.Info("catalogs refreshed",
		"weapons", counts[equipment.SlotWeapon],
		"armor", counts[equipment.SlotArmor],
		"shields", counts[equipment.SlotShield],
		"helmets", counts[equipment.SlotHelmet],
		"accessories", counts[equipment.SlotAccessory],
	)

	return &loadoutsvc.RefreshCatalogsOutput{
		Counts: counts,
	}, nil
}

func (o *orchestrator) GetPreferences(ctx context.Context, input *loadoutsvc.GetPreferencesInput) (*loadoutsvc.GetPreferencesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	output, err := o.preferencesRepo.Get(ctx, preferences.GetInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &loadoutsvc.GetPreferencesOutput{
		Preferences: output.Preferences,
	}, nil
}

func (o *orchestrator) SavePreferences(ctx context.Context, input *loadoutsvc.SavePreferencesInput) (*loadoutsvc.SavePreferencesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if err := validateProfile(&input.Profile); err != nil {
		return nil, err
	}

	output, err := o.preferencesRepo.Save(ctx, preferences.SaveInput{
		Preferences: &equipment.Preferences{
			PlayerID: input.PlayerID,
			Profile:  input.Profile,
		},
	})
	if err != nil {
		return nil, err
	}

	return &loadoutsvc.SavePreferencesOutput{
		Preferences: output.Preferences,
	}, nil
}

func (o *orchestrator) DeletePreferences(ctx context.Context, input *loadoutsvc.DeletePreferencesInput) (*loadoutsvc.DeletePreferencesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	if _, err := o.preferencesRepo.Delete(ctx, preferences.DeleteInput{
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, err
	}

	return &loadoutsvc.DeletePreferencesOutput{}, nil
}

// validateProfile rejects profiles the calculator cannot meaningfully
// search. The ranged policy rules are left to the engine so the
// dedicated domain error surfaces for them.
func validateProfile(profile *equipment.UnitProfile) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("carryWeight", profile.CarryWeight, vb)
	errors.ValidateNonNegative("forgeLevel", profile.ForgeLevel, vb)
	errors.ValidateNonNegative("apWeight", profile.Weights.AttackPoints, vb)
	errors.ValidateNonNegative("vpWeight", profile.Weights.VitalityPoints, vb)
	errors.ValidateNonNegative("hpWeight", profile.Weights.HealthPoints, vb)
	errors.ValidateNonNegative("mpWeight", profile.Weights.ManaPoints, vb)

	if !profile.Element.IsValid() {
		vb.InvalidField("element", "unknown element")
	}
	if profile.AttackElement != equipment.ElementUnspecified && !profile.AttackElement.IsValid() {
		vb.InvalidField("attackElement", "unknown element")
	}
	if profile.DefenseElement != equipment.ElementUnspecified && !profile.DefenseElement.IsValid() {
		vb.InvalidField("defenseElement", "unknown element")
	}

	return vb.Build()
}
