package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wilayah/internal/models/db_models"
	"wilayah/pkg/utils"
)

type KabupatenRepository interface {
	Insert(ctx context.Context, kabupaten *db_models.Kabupaten) error
	Update(ctx context.Context, kabupaten *db_models.Kabupaten) error
	DeleteCascade(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*db_models.Kabupaten, error)
	List(ctx context.Context) ([]db_models.Kabupaten, error)
}

type kabupatenRepository struct {
	db *gorm.DB
}

func NewKabupatenRepository(db *gorm.DB) KabupatenRepository {
	return &kabupatenRepository{db: db}
}

func (r *kabupatenRepository) Insert(ctx context.Context, kabupaten *db_models.Kabupaten) error {
	err := r.db.WithContext(ctx).Omit("Provinsi").Create(kabupaten).Error
	return translateConstraintError(err, nil, utils.ErrProvinsiReferenceMissing)
}

// Update writes the kabupaten and, when it moved to another provinsi,
// re-points its penduduk to the new provinsi in the same transaction.
func (r *kabupatenRepository) Update(ctx context.Context, kabupaten *db_models.Kabupaten) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(kabupaten).
			Select("Nama", "ProvinsiID", "JumlahPenduduk", "UpdatedAt").
			Updates(kabupaten)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrKabupatenNotFound
		}

		return tx.Model(&db_models.Penduduk{}).
			Where("kabupaten_id = ? AND provinsi_id <> ?", kabupaten.ID, kabupaten.ProvinsiID).
			Update("provinsi_id", kabupaten.ProvinsiID).Error
	})
	return translateConstraintError(err, nil, utils.ErrProvinsiReferenceMissing)
}

func (r *kabupatenRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kabupaten_id = ?", id).Delete(&db_models.Penduduk{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&db_models.Kabupaten{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrKabupatenNotFound
		}
		return nil
	})
}

func (r *kabupatenRepository) FindByID(ctx context.Context, id uint) (*db_models.Kabupaten, error) {
	var kabupaten db_models.Kabupaten
	err := r.db.WithContext(ctx).
		Preload("Provinsi").
		First(&kabupaten, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &kabupaten, nil
}

func (r *kabupatenRepository) List(ctx context.Context) ([]db_models.Kabupaten, error) {
	var kabupatens []db_models.Kabupaten
	err := r.db.WithContext(ctx).
		Preload("Provinsi").
		Order("id ASC").
		Find(&kabupatens).Error
	if err != nil {
		return nil, err
	}
	return kabupatens, nil
}
