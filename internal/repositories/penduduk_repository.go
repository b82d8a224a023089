package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wilayah/internal/models/db_models"
	"wilayah/pkg/utils"
)

type PendudukRepository interface {
	Insert(ctx context.Context, penduduk *db_models.Penduduk) error
	Update(ctx context.Context, penduduk *db_models.Penduduk) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*db_models.Penduduk, error)
	List(ctx context.Context) ([]db_models.Penduduk, error)
	// NikTaken reports whether another penduduk (id != excludeID) holds nik.
	// Pass 0 to check against every record.
	NikTaken(ctx context.Context, nik string, excludeID uint) (bool, error)
}

type pendudukRepository struct {
	db *gorm.DB
}

func NewPendudukRepository(db *gorm.DB) PendudukRepository {
	return &pendudukRepository{db: db}
}

func (r *pendudukRepository) Insert(ctx context.Context, penduduk *db_models.Penduduk) error {
	err := r.db.WithContext(ctx).Omit("Provinsi", "Kabupaten").Create(penduduk).Error
	return translateConstraintError(err, utils.ErrNikAlreadyExists, utils.ErrReferenceMissing)
}

func (r *pendudukRepository) Update(ctx context.Context, penduduk *db_models.Penduduk) error {
	result := r.db.WithContext(ctx).
		Model(penduduk).
		Select("Nik", "Nama", "Umur", "Alamat", "ProvinsiID", "KabupatenID", "UpdatedAt").
		Updates(penduduk)
	if result.Error != nil {
		return translateConstraintError(result.Error, utils.ErrNikAlreadyExists, utils.ErrReferenceMissing)
	}
	if result.RowsAffected == 0 {
		return utils.ErrPendudukNotFound
	}
	return nil
}

func (r *pendudukRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Penduduk{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrPendudukNotFound
	}
	return nil
}

func (r *pendudukRepository) FindByID(ctx context.Context, id uint) (*db_models.Penduduk, error) {
	var penduduk db_models.Penduduk
	err := r.db.WithContext(ctx).
		Preload("Provinsi").
		Preload("Kabupaten").
		First(&penduduk, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &penduduk, nil
}

func (r *pendudukRepository) List(ctx context.Context) ([]db_models.Penduduk, error) {
	var penduduks []db_models.Penduduk
	err := r.db.WithContext(ctx).
		Preload("Provinsi").
		Preload("Kabupaten").
		Order("id ASC").
		Find(&penduduks).Error
	if err != nil {
		return nil, err
	}
	return penduduks, nil
}

func (r *pendudukRepository) NikTaken(ctx context.Context, nik string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Penduduk{}).Where("nik = ?", nik)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var n int64
	if err := query.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
