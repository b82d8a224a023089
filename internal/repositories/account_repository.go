package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wilayah/internal/models/db_models"
	"wilayah/pkg/utils"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id uint) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	err := a.db.WithContext(ctx).Create(account).Error
	return translateConstraintError(err, utils.ErrEmailAlreadyExists, nil)
}

func (a *accountRepository) FindByID(ctx context.Context, id uint) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}
