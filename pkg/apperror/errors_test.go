package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NotFound("patient", nil), http.StatusNotFound},
		{Validation(FieldError{Field: "name", Message: "name is required"}), http.StatusBadRequest},
		{DuplicateCredential(nil), http.StatusConflict},
		{InvalidCredentials(nil), http.StatusUnauthorized},
		{Unauthenticated(), http.StatusUnauthorized},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode(), tt.err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row missing")
	err := NotFound("visit", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "visit not found: row missing", err.Error())
}

func TestInvalidCredentialsMessageIsGeneric(t *testing.T) {
	err := InvalidCredentials(errors.New("password mismatch for bob@clinic.test"))

	// The user-facing message must not reveal which part was wrong.
	assert.Equal(t, "invalid credentials", err.Message)
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NotFound("patient", nil), CodeNotFound))
	assert.False(t, IsCode(NotFound("patient", nil), CodeValidation))
	assert.False(t, IsCode(errors.New("plain"), CodeNotFound))
}
