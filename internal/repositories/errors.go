package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// translateConstraintError maps constraint violations reported by the driver
// (gorm.Config.TranslateError must be on) to the given domain errors. A nil
// replacement leaves that kind of error untouched.
func translateConstraintError(err error, duplicate error, foreignKey error) error {
	switch {
	case err == nil:
		return nil
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	case foreignKey != nil && errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKey
	default:
		return err
	}
}
