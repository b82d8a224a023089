package infra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"wilayah/internal/infra"
	"wilayah/internal/models/db_models"
	"wilayah/internal/testutil"
)

func TestSeedDatabase(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	require.NoError(t, infra.SeedDatabase(ctx, db, zap.NewNop()))

	require.Equal(t, int64(5), testutil.Count(t, db, &db_models.Provinsi{}))
	require.Equal(t, int64(10), testutil.Count(t, db, &db_models.Kabupaten{}))
	require.Equal(t, int64(5), testutil.Count(t, db, &db_models.Penduduk{}))

	var total int64
	require.NoError(t, db.Model(&db_models.Kabupaten{}).Select("SUM(jumlah_penduduk)").Scan(&total).Error)
	require.Equal(t, int64(13200000), total)

	var penduduks []db_models.Penduduk
	require.NoError(t, db.Preload("Kabupaten").Find(&penduduks).Error)
	for _, p := range penduduks {
		require.NotNil(t, p.Kabupaten)
		require.Equal(t, p.Kabupaten.ProvinsiID, p.ProvinsiID, p.Nik)
	}

	// second run is a no-op
	require.NoError(t, infra.SeedDatabase(ctx, db, zap.NewNop()))
	require.Equal(t, int64(5), testutil.Count(t, db, &db_models.Provinsi{}))
	require.Equal(t, int64(5), testutil.Count(t, db, &db_models.Penduduk{}))
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, "file:wilayah.db?_foreign_keys=on", infra.SQLiteDSN("wilayah.db"))
}
