package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"problem_app/internal/logger"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found wrapped", fmt.Errorf("problem 42: %w", ErrNotFound), http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"validation", Validationf("title is required"), http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusConflict},
		{"unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation}), http.StatusConflict},
		{"other pg error", &pgconn.PgError{Code: "08006"}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}

func TestValidationf(t *testing.T) {
	err := Validationf("difficulty %q is not allowed", "Extreme")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, `difficulty "Extreme" is not allowed`, err.Error())
}

func TestRespondWithServiceError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/problems", nil)

	RespondWithServiceError(rec, req, logger.Nop(), errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRespondWithServiceError_PassesClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/comments/x", nil)

	RespondWithServiceError(rec, req, logger.Nop(), fmt.Errorf("comment x: %w", ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"comment x: requested resource not found"}`, rec.Body.String())
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrNotFound, "Problem not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Problem not found", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromError(fmt.Errorf("delete: %w", err)))
}
