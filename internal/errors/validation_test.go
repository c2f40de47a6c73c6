package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoerenD/equipment-calculator-web/internal/errors"
)

func TestValidationBuilder(t *testing.T) {
	t.Run("returns nil when nothing failed", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		assert.NoError(t, vb.Build())
	})

	t.Run("collects multiple field errors", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("playerID")
		vb.InvalidField("element", "not a known element")

		err := vb.Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "playerID")
		assert.Contains(t, err.Error(), "element")
	})

	t.Run("carries field details as metadata", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("playerID")

		var customErr *errors.Error
		require.True(t, errors.As(vb.Build(), &customErr))
		assert.NotNil(t, customErr.Meta["validation_errors"])
	})
}

func TestValidateRequired(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "value present", value: "player_123", wantErr: false},
		{name: "empty string", value: "", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("playerID", tc.value, vb)

			if tc.wantErr {
				assert.Error(t, vb.Build())
			} else {
				assert.NoError(t, vb.Build())
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	testCases := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "positive", value: 42, wantErr: false},
		{name: "negative", value: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vb := errors.NewValidationBuilder()
			errors.ValidateNonNegative("carryWeight", tc.value, vb)

			if tc.wantErr {
				assert.Error(t, vb.Build())
			} else {
				assert.NoError(t, vb.Build())
			}
		})
	}
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"NONE", "FIRE", "ICE"}

	t.Run("allowed value passes", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("element", "FIRE", allowed, vb)
		assert.NoError(t, vb.Build())
	})

	t.Run("unknown value fails", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("element", "LAVA", allowed, vb)

		err := vb.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of")
	})
}
