// Package errors provides structured error handling for the equipment
// calculator service.
//
// Errors carry a Code, a human-readable message, an optional wrapped
// cause and optional metadata. Codes map onto HTTP status codes at the
// API boundary via Code.HTTPStatus, so a repository or engine error
// surfaces with the right status without the handler inspecting
// messages.
//
// Creating errors:
//
//	errors.InvalidArgument("carry weight must not be negative")
//	errors.NotFoundf("preferences for player %s not found", playerID)
//	errors.Wrapf(err, "failed to fetch catalogs")
//
// Validating input:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	errors.ValidateNonNegative("carryWeight", input.Profile.CarryWeight, vb)
//	if err := vb.Build(); err != nil {
//		return nil, err
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) { ... }
//	if errors.Is(err, engine.ErrInvalidCombination) { ... }
//
// Two errors are considered equal under Is when their codes match, so
// domain sentinels that must stay distinguishable need distinct codes.
package errors
