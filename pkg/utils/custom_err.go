package utils

import (
	"errors"
	"fmt"
)

// Error kinds. The specific errors below unwrap to one of these so handlers
// can map whole families with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForeignKey = errors.New("foreign key violation")
)

var (
	ErrProvinsiNotFound  = kindOf(ErrNotFound, "provinsi not found")
	ErrKabupatenNotFound = kindOf(ErrNotFound, "kabupaten not found")
	ErrPendudukNotFound  = kindOf(ErrNotFound, "penduduk not found")

	ErrNikAlreadyExists   = kindOf(ErrConflict, "nik is already registered")
	ErrEmailAlreadyExists = kindOf(ErrConflict, "email is already registered")

	ErrProvinsiReferenceMissing  = kindOf(ErrForeignKey, "provinsi_id does not reference an existing provinsi")
	ErrKabupatenReferenceMissing = kindOf(ErrForeignKey, "kabupaten_id does not reference an existing kabupaten")
	ErrReferenceMissing          = kindOf(ErrForeignKey, "provinsi_id or kabupaten_id does not reference an existing record")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDatabaseError      = errors.New("database error")
)

type kindError struct {
	kind error
	msg  string
}

func kindOf(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewValidationError returns an error matching ErrValidation whose message is
// meant for the client.
func NewValidationError(format string, args ...any) error {
	return kindOf(ErrValidation, fmt.Sprintf(format, args...))
}
