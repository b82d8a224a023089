package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wilayah/internal/models/db_models"
	"wilayah/pkg/utils"
)

type ProvinsiRepository interface {
	Insert(ctx context.Context, provinsi *db_models.Provinsi) error
	Update(ctx context.Context, provinsi *db_models.Provinsi) error
	DeleteCascade(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*db_models.Provinsi, error)
	List(ctx context.Context) ([]db_models.Provinsi, error)
}

type provinsiRepository struct {
	db *gorm.DB
}

func NewProvinsiRepository(db *gorm.DB) ProvinsiRepository {
	return &provinsiRepository{db: db}
}

func (r *provinsiRepository) Insert(ctx context.Context, provinsi *db_models.Provinsi) error {
	return r.db.WithContext(ctx).Create(provinsi).Error
}

func (r *provinsiRepository) Update(ctx context.Context, provinsi *db_models.Provinsi) error {
	result := r.db.WithContext(ctx).
		Model(provinsi).
		Select("Nama", "UpdatedAt").
		Updates(provinsi)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrProvinsiNotFound
	}
	return nil
}

// DeleteCascade removes the provinsi together with its kabupaten and every
// penduduk pointing at either, in one transaction. The ON DELETE CASCADE
// constraints do the same; deleting explicitly keeps the behaviour when the
// engine runs with foreign keys off.
func (r *provinsiRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var kabupatenIDs []uint
		if err := tx.Model(&db_models.Kabupaten{}).
			Where("provinsi_id = ?", id).
			Pluck("id", &kabupatenIDs).Error; err != nil {
			return err
		}

		penduduks := tx.Where("provinsi_id = ?", id)
		if len(kabupatenIDs) > 0 {
			penduduks = tx.Where("provinsi_id = ? OR kabupaten_id IN ?", id, kabupatenIDs)
		}
		if err := penduduks.Delete(&db_models.Penduduk{}).Error; err != nil {
			return err
		}

		if err := tx.Where("provinsi_id = ?", id).Delete(&db_models.Kabupaten{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&db_models.Provinsi{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrProvinsiNotFound
		}
		return nil
	})
}

func (r *provinsiRepository) FindByID(ctx context.Context, id uint) (*db_models.Provinsi, error) {
	var provinsi db_models.Provinsi
	err := r.db.WithContext(ctx).First(&provinsi, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provinsi, nil
}

func (r *provinsiRepository) List(ctx context.Context) ([]db_models.Provinsi, error) {
	var provinsis []db_models.Provinsi
	err := r.db.WithContext(ctx).
		Order("nama ASC").
		Order("id ASC").
		Find(&provinsis).Error
	if err != nil {
		return nil, err
	}
	return provinsis, nil
}
