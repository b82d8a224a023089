package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"wilayah/internal/infra"
	"wilayah/internal/models/db_models"
)

var dbSeq atomic.Int64

// DB opens a private in-memory sqlite database with foreign keys on and the
// schema migrated. It is closed when tb finishes.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:wilayah_test_%d?mode=memory&cache=shared&_foreign_keys=on", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := infra.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

func CreateProvinsi(tb testing.TB, db *gorm.DB, nama string) *db_models.Provinsi {
	tb.Helper()
	p := &db_models.Provinsi{Nama: nama}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("create provinsi: %v", err)
	}
	return p
}

func CreateKabupaten(tb testing.TB, db *gorm.DB, provinsiID uint, nama string, jumlah int64) *db_models.Kabupaten {
	tb.Helper()
	k := &db_models.Kabupaten{Nama: nama, ProvinsiID: provinsiID, JumlahPenduduk: jumlah}
	if err := db.Omit("Provinsi").Create(k).Error; err != nil {
		tb.Fatalf("create kabupaten: %v", err)
	}
	return k
}

func CreatePenduduk(tb testing.TB, db *gorm.DB, kabupaten *db_models.Kabupaten, nik string) *db_models.Penduduk {
	tb.Helper()
	p := &db_models.Penduduk{
		Nama:        "Penduduk " + nik,
		Nik:         nik,
		Umur:        30,
		Alamat:      "Jl. Merdeka No. 1",
		ProvinsiID:  kabupaten.ProvinsiID,
		KabupatenID: kabupaten.ID,
	}
	if err := db.Omit("Provinsi", "Kabupaten").Create(p).Error; err != nil {
		tb.Fatalf("create penduduk: %v", err)
	}
	return p
}

func Count(tb testing.TB, db *gorm.DB, model any) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count: %v", err)
	}
	return n
}
