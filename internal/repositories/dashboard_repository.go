package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "wilayah/internal/models/db_models"
)

type DashboardRepository interface {
	CountProvinsi(ctx context.Context) (int64, error)
	CountKabupaten(ctx context.Context) (int64, error)
	CountPenduduk(ctx context.Context) (int64, error)
	SumJumlahPenduduk(ctx context.Context) (int64, error)
	SummaryPerProvinsi(ctx context.Context) ([]ProvinsiSummaryRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type ProvinsiSummaryRow struct {
	ProvinsiID        uint   `gorm:"column:provinsi_id"`
	Nama              string `gorm:"column:nama"`
	KabupatenCount    int64  `gorm:"column:kabupaten_count"`
	JumlahPenduduk    int64  `gorm:"column:jumlah_penduduk"`
	PendudukTerdaftar int64  `gorm:"column:penduduk_terdaftar"`
}

func (r *dashboardRepository) CountProvinsi(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Provinsi{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountKabupaten(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Kabupaten{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPenduduk(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Penduduk{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumJumlahPenduduk(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Kabupaten{}).
		Select("COALESCE(SUM(jumlah_penduduk), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) SummaryPerProvinsi(ctx context.Context) ([]ProvinsiSummaryRow, error) {
	const q = `
SELECT p.id AS provinsi_id,
       p.nama AS nama,
       (SELECT COUNT(*) FROM kabupatens k WHERE k.provinsi_id = p.id) AS kabupaten_count,
       (SELECT COALESCE(SUM(k.jumlah_penduduk), 0) FROM kabupatens k WHERE k.provinsi_id = p.id) AS jumlah_penduduk,
       (SELECT COUNT(*) FROM penduduks d WHERE d.provinsi_id = p.id) AS penduduk_terdaftar
FROM provinsis p
ORDER BY p.nama ASC, p.id ASC`

	var rows []ProvinsiSummaryRow
	if err := r.db.WithContext(ctx).Raw(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
