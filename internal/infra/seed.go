package infra

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"wilayah/internal/models/db_models"
)

type seedKabupaten struct {
	nama           string
	jumlahPenduduk int64
}

var seedProvinsis = []struct {
	nama       string
	kabupatens []seedKabupaten
}{
	{"Jawa Barat", []seedKabupaten{{"Bandung", 2500000}, {"Bogor", 1100000}}},
	{"Jawa Tengah", []seedKabupaten{{"Semarang", 1800000}, {"Solo", 600000}}},
	{"Jawa Timur", []seedKabupaten{{"Surabaya", 3000000}, {"Malang", 900000}}},
	{"Banten", []seedKabupaten{{"Tangerang", 2000000}, {"Serang", 700000}}},
	{"DI Yogyakarta", []seedKabupaten{{"Yogyakarta", 400000}, {"Bantul", 200000}}},
}

var seedPenduduks = []db_models.Penduduk{
	{Nama: "Budi Santoso", Nik: "3273010101010001", Umur: 25, Alamat: "Jl. Merdeka No. 1"},
	{Nama: "Ani Wijaya", Nik: "3273010101010002", Umur: 30, Alamat: "Jl. Sudirman No. 45"},
	{Nama: "Citra Dewi", Nik: "3273010101010003", Umur: 22, Alamat: "Jl. Gatot Subroto No. 12"},
	{Nama: "Dodi Pratama", Nik: "3273010101010004", Umur: 35, Alamat: "Jl. Thamrin No. 8"},
	{Nama: "Eka Suryani", Nik: "3273010101010005", Umur: 28, Alamat: "Jl. Asia Afrika No. 10"},
}

// SeedDatabase loads the sample provinsi, kabupaten and penduduk rows.
// It does nothing when any provinsi already exists. Residents are spread
// over the seeded kabupaten round-robin.
func SeedDatabase(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&db_models.Provinsi{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count provinsi: %w", err)
	}
	if existing > 0 {
		logger.Info("seed skipped, data already present", zap.Int64("provinsi", existing))
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var kabupatens []db_models.Kabupaten
		for _, p := range seedProvinsis {
			provinsi := db_models.Provinsi{Nama: p.nama}
			if err := tx.Create(&provinsi).Error; err != nil {
				return fmt.Errorf("seed provinsi %s: %w", p.nama, err)
			}
			for _, k := range p.kabupatens {
				kabupaten := db_models.Kabupaten{
					Nama:           k.nama,
					ProvinsiID:     provinsi.ID,
					JumlahPenduduk: k.jumlahPenduduk,
				}
				if err := tx.Create(&kabupaten).Error; err != nil {
					return fmt.Errorf("seed kabupaten %s: %w", k.nama, err)
				}
				kabupatens = append(kabupatens, kabupaten)
			}
		}

		for i, p := range seedPenduduks {
			kabupaten := kabupatens[i%len(kabupatens)]
			penduduk := p
			penduduk.ProvinsiID = kabupaten.ProvinsiID
			penduduk.KabupatenID = kabupaten.ID
			if err := tx.Create(&penduduk).Error; err != nil {
				return fmt.Errorf("seed penduduk %s: %w", p.Nik, err)
			}
		}

		logger.Info("seed completed",
			zap.Int("provinsi", len(seedProvinsis)),
			zap.Int("kabupaten", len(kabupatens)),
			zap.Int("penduduk", len(seedPenduduks)))
		return nil
	})
}
