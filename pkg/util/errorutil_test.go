package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewUnauthorized("Invalid credentials")
	mapped := ToDomainError(original)

	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
	assert.Equal(t, "Invalid credentials", mapped.Message)
	assert.Equal(t, "UNAUTHORIZED", mapped.Code)
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewForbidden("Insufficient permissions"))
	mapped := ToDomainError(wrapped)

	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	mapped := ToDomainError(errors.New("connection refused to db-internal:5432"))
	require.NotNil(t, mapped)

	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "Internal server error", mapped.Message)
	assert.NotContains(t, mapped.Message, "db-internal")
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))
}
