package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound, "Address not found"},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, http.StatusConflict, "Address already exists"},
		{"foreign_key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, http.StatusBadRequest, "Referenced record does not exist"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.err, "Address", "address_find"))
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "User", "user_find"))
}

func TestWrap_KeepsAppError(t *testing.T) {
	original := apperr.BadRequest("Email already exists")
	assert.Same(t, original, dberr.Wrap(original, "User", "user_update"))
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"}

	assert.True(t, dberr.IsUniqueViolation(err, ""))
	assert.True(t, dberr.IsUniqueViolation(err, "account_email_key"))
	assert.False(t, dberr.IsUniqueViolation(err, "other"))
	assert.False(t, dberr.IsUniqueViolation(errors.New("x"), ""))
}
