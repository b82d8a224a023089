package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Nama  string `form:"nama" binding:"required,max=5"`
	Umur  *int   `form:"umur" binding:"required,min=0"`
	Email string `form:"email" binding:"omitempty,email"`
}

func TestValidateStructMessages(t *testing.T) {
	neg := -1
	err := ValidateStruct(sampleRequest{Nama: "toolong", Umur: &neg, Email: "x"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "nama must be at most 5 characters")
	assert.Contains(t, err.Error(), "umur must be at least 0")
	assert.Contains(t, err.Error(), "email must be a valid email address")

	err = ValidateStruct(sampleRequest{})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "nama is required")
	assert.Contains(t, err.Error(), "umur is required")

	zero := 0
	require.NoError(t, ValidateStruct(&sampleRequest{Nama: "Budi", Umur: &zero}))
}

func TestTranslateValidationError(t *testing.T) {
	require.NoError(t, TranslateValidationError(nil))

	already := NewValidationError("bad %s", "input")
	require.Same(t, already, TranslateValidationError(already))

	err := TranslateValidationError(errors.New("EOF"))
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "malformed request: EOF", err.Error())
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrProvinsiNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrNikAlreadyExists, ErrConflict)
	assert.ErrorIs(t, ErrKabupatenReferenceMissing, ErrForeignKey)
	assert.NotErrorIs(t, ErrNikAlreadyExists, ErrNotFound)
	assert.Equal(t, "provinsi not found", ErrProvinsiNotFound.Error())
}
