// Package v1alpha1 implements the v1alpha1 HTTP API: loadout
// calculation, catalog refresh and saved preferences.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
	"github.com/SoerenD/equipment-calculator-web/internal/errors"
	"github.com/SoerenD/equipment-calculator-web/internal/services/loadout"
)

// Config holds the dependencies for the v1alpha1 handler
type Config struct {
	LoadoutService loadout.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.LoadoutService == nil {
		return errors.InvalidArgument("loadout service is required")
	}
	return nil
}

// Handler serves the v1alpha1 routes
type Handler struct {
	service loadout.Service
}

// NewHandler creates a new v1alpha1 handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.LoadoutService,
	}, nil
}

// Register attaches the v1alpha1 routes to the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1alpha1/loadout", h.CalculateLoadout)
	mux.HandleFunc("POST /api/v1alpha1/catalogs/refresh", h.RefreshCatalogs)
	mux.HandleFunc("GET /api/v1alpha1/players/{playerID}/preferences", h.GetPreferences)
	mux.HandleFunc("PUT /api/v1alpha1/players/{playerID}/preferences", h.SavePreferences)
	mux.HandleFunc("DELETE /api/v1alpha1/players/{playerID}/preferences", h.DeletePreferences)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type calculateLoadoutResponse struct {
	Set            *equipment.EquipmentSet `json:"set"`
	Score          int                     `json:"score"`
	TotalWeight    int                     `json:"total_weight"`
	AttackElement  equipment.Element       `json:"attack_element"`
	DefenseElement equipment.Element       `json:"defense_element"`
}

type refreshCatalogsResponse struct {
	Counts map[equipment.Slot]int `json:"counts"`
}

// CalculateLoadout handles GET /api/v1alpha1/loadout
func (h *Handler) CalculateLoadout(w http.ResponseWriter, r *http.Request) {
	profile, err := profileFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.CalculateLoadout(r.Context(), &loadout.CalculateLoadoutInput{
		Profile: profile,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, calculateLoadoutResponse{
		Set:            output.Set,
		Score:          output.Score,
		TotalWeight:    output.TotalWeight,
		AttackElement:  output.AttackElement,
		DefenseElement: output.DefenseElement,
	})
}

// RefreshCatalogs handles POST /api/v1alpha1/catalogs/refresh
func (h *Handler) RefreshCatalogs(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.RefreshCatalogs(r.Context(), &loadout.RefreshCatalogsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshCatalogsResponse{
		Counts: output.Counts,
	})
}

// GetPreferences handles GET /api/v1alpha1/players/{playerID}/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetPreferences(r.Context(), &loadout.GetPreferencesInput{
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Preferences)
}

// SavePreferences handles PUT /api/v1alpha1/players/{playerID}/preferences
func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var profile equipment.UnitProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, errors.InvalidArgumentf("malformed request body: %v", err))
		return
	}

	output, err := h.service.SavePreferences(r.Context(), &loadout.SavePreferencesInput{
		PlayerID: r.PathValue("playerID"),
		Profile:  profile,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Preferences)
}

// DeletePreferences handles DELETE /api/v1alpha1/players/{playerID}/preferences
func (h *Handler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeletePreferences(r.Context(), &loadout.DeletePreferencesInput{
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// profileFromQuery builds a UnitProfile from loadout query parameters.
// Absent parameters take their zero-value defaults; malformed values
// are rejected with InvalidArgument.
func profileFromQuery(r *http.Request) (*equipment.UnitProfile, error) {
	q := r.URL.Query()
	vb := errors.NewValidationBuilder()

	carryWeight := intParam(q.Get("carryWeight"), "carryWeight", vb)
	forgeLevel := intParam(q.Get("forgeLevel"), "forgeLevel", vb)
	ranged := boolParam(q.Get("ranged"), "ranged", vb)
	rangedRequired := boolParam(q.Get("rangedRequired"), "rangedRequired", vb)
	rangedForbidden := boolParam(q.Get("rangedForbidden"), "rangedForbidden", vb)

	element := equipment.ElementNone
	if raw := q.Get("element"); raw != "" {
		parsed, err := equipment.ParseElement(raw)
		if err != nil {
			vb.InvalidField("element", err.Error())
		} else {
			element = parsed
		}
	}
	attackElement := elementParam(q.Get("attackElement"), "attackElement", vb)
	defenseElement := elementParam(q.Get("defenseElement"), "defenseElement", vb)

	weights := equipment.ScoringWeights{
		AttackPoints:   intParam(q.Get("apWeight"), "apWeight", vb),
		VitalityPoints: intParam(q.Get("vpWeight"), "vpWeight", vb),
		HealthPoints:   intParam(q.Get("hpWeight"), "hpWeight", vb),
		ManaPoints:     intParam(q.Get("mpWeight"), "mpWeight", vb),
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &equipment.UnitProfile{
		CarryWeight:     carryWeight,
		Element:         element,
		Ranged:          ranged,
		ForgeLevel:      forgeLevel,
		RangedRequired:  rangedRequired,
		RangedForbidden: rangedForbidden,
		AttackElement:   attackElement,
		DefenseElement:  defenseElement,
		Weights:         weights,
	}, nil
}

func intParam(raw, field string, vb *errors.ValidationBuilder) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		vb.InvalidField(field, "must be an integer")
		return 0
	}
	return value
}

func boolParam(raw, field string, vb *errors.ValidationBuilder) bool {
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		vb.InvalidField(field, "must be a boolean")
		return false
	}
	return value
}

func elementParam(raw, field string, vb *errors.ValidationBuilder) equipment.Element {
	if raw == "" {
		return equipment.ElementUnspecified
	}
	parsed, err := equipment.ParseElement(raw)
	if err != nil {
		vb.InvalidField(field, err.Error())
		return equipment.ElementUnspecified
	}
	return parsed
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps an error to its HTTP status. Unknown error types are
// reported as opaque internal errors so nothing leaks from lower
// layers.
func writeError(w http.ResponseWriter, err error) {
	var appErr *errors.Error
	if !errors.As(err, &appErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    errors.CodeInternal.String(),
			Message: "internal server error",
		})
		return
	}

	status := appErr.Code.HTTPStatus()
	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	writeJSON(w, status, errorResponse{
		Code:    appErr.Code.String(),
		Message: message,
	})
}
