package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SoerenD/equipment-calculator-web/internal/pkg/idgen"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	handler := withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), idgen.NewSequential("req"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1alpha1/loadout", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req_1", rec.Header().Get("X-Request-ID"))
}

func TestRecoveryMiddlewareConvertsPanics(t *testing.T) {
	handler := withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), idgen.NewSequential("req"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1alpha1/loadout", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
