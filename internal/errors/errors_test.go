package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SoerenD/equipment-calculator-web/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "catalog missing")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "catalog missing", err.Message)
	assert.Equal(t, "NOT_FOUND: catalog missing", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps plain error as internal", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := errors.Wrap(cause, "failed to fetch catalogs")

		assert.Equal(t, errors.CodeInternal, err.Code)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to fetch catalogs")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("preserves existing code", func(t *testing.T) {
		cause := errors.NotFound("preferences not found")
		err := errors.Wrap(cause, "failed to load preferences")

		assert.Equal(t, errors.CodeNotFound, err.Code)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, "nothing happened"))
	})
}

func TestIs(t *testing.T) {
	mismatch := errors.InvalidArgument("elements do not line up")
	exhausted := errors.FailedPrecondition("no combination")

	assert.True(t, errors.Is(errors.InvalidArgument("other message"), mismatch))
	assert.False(t, errors.Is(exhausted, mismatch))
	assert.False(t, errors.Is(mismatch, exhausted))
}

func TestGetCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errors.Code
	}{
		{name: "nil error", err: nil, want: errors.CodeOK},
		{name: "custom error", err: errors.Unavailable("redis down"), want: errors.CodeUnavailable},
		{name: "wrapped custom error", err: errors.Wrap(errors.NotFound("gone"), "lookup failed"), want: errors.CodeNotFound},
		{name: "plain error", err: stderrors.New("boom"), want: errors.CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.GetCode(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		code errors.Code
		want int
	}{
		{code: errors.CodeOK, want: http.StatusOK},
		{code: errors.CodeInvalidArgument, want: http.StatusBadRequest},
		{code: errors.CodeNotFound, want: http.StatusNotFound},
		{code: errors.CodeFailedPrecondition, want: http.StatusPreconditionFailed},
		{code: errors.CodeInternal, want: http.StatusInternalServerError},
		{code: errors.CodeUnavailable, want: http.StatusServiceUnavailable},
		{code: errors.Code("BOGUS"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.HTTPStatus())
		})
	}
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad element").WithMeta("element", "LAVA")

	assert.Equal(t, "LAVA", err.Meta["element"])
}
