package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"wilayah/internal/models/db_models"
	"wilayah/internal/testutil"
	"wilayah/pkg/utils"
)

type ProvinsiRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo ProvinsiRepository
	ctx  context.Context
}

func (s *ProvinsiRepositorySuite) SetupTest() {
	s.db = testutil.DB(s.T())
	s.repo = NewProvinsiRepository(s.db)
	s.ctx = context.Background()
}

func TestProvinsiRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProvinsiRepositorySuite))
}

func (s *ProvinsiRepositorySuite) TestInsertAndFind() {
	provinsi := &db_models.Provinsi{Nama: "Jawa Barat"}
	s.Require().NoError(s.repo.Insert(s.ctx, provinsi))
	s.NotZero(provinsi.ID)
	s.NotZero(provinsi.CreatedAt)

	found, err := s.repo.FindByID(s.ctx, provinsi.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Jawa Barat", found.Nama)

	missing, err := s.repo.FindByID(s.ctx, provinsi.ID+100)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *ProvinsiRepositorySuite) TestListOrderedByNama() {
	testutil.CreateProvinsi(s.T(), s.db, "Jawa Timur")
	testutil.CreateProvinsi(s.T(), s.db, "Banten")
	testutil.CreateProvinsi(s.T(), s.db, "DI Yogyakarta")

	provinsis, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(provinsis, 3)
	s.Equal("Banten", provinsis[0].Nama)
	s.Equal("DI Yogyakarta", provinsis[1].Nama)
	s.Equal("Jawa Timur", provinsis[2].Nama)
}

func (s *ProvinsiRepositorySuite) TestUpdate() {
	provinsi := testutil.CreateProvinsi(s.T(), s.db, "Jawa")

	provinsi.Nama = "Jawa Tengah"
	s.Require().NoError(s.repo.Update(s.ctx, provinsi))

	found, err := s.repo.FindByID(s.ctx, provinsi.ID)
	s.Require().NoError(err)
	s.Equal("Jawa Tengah", found.Nama)

	s.Run("unknown id", func() {
		err := s.repo.Update(s.ctx, &db_models.Provinsi{BaseModel: db_models.BaseModel{ID: 999}, Nama: "X"})
		s.ErrorIs(err, utils.ErrProvinsiNotFound)
	})
}

func (s *ProvinsiRepositorySuite) TestDeleteCascade() {
	jabar := testutil.CreateProvinsi(s.T(), s.db, "Jawa Barat")
	jatim := testutil.CreateProvinsi(s.T(), s.db, "Jawa Timur")
	bandung := testutil.CreateKabupaten(s.T(), s.db, jabar.ID, "Bandung", 2500000)
	bogor := testutil.CreateKabupaten(s.T(), s.db, jabar.ID, "Bogor", 1100000)
	surabaya := testutil.CreateKabupaten(s.T(), s.db, jatim.ID, "Surabaya", 3000000)
	testutil.CreatePenduduk(s.T(), s.db, bandung, "1001")
	testutil.CreatePenduduk(s.T(), s.db, bogor, "1002")
	survivor := testutil.CreatePenduduk(s.T(), s.db, surabaya, "1003")

	s.Require().NoError(s.repo.DeleteCascade(s.ctx, jabar.ID))

	s.Equal(int64(1), testutil.Count(s.T(), s.db, &db_models.Provinsi{}))
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &db_models.Kabupaten{}))

	var remaining []db_models.Penduduk
	s.Require().NoError(s.db.Find(&remaining).Error)
	s.Require().Len(remaining, 1)
	s.Equal(survivor.ID, remaining[0].ID)

	s.Run("unknown id", func() {
		s.ErrorIs(s.repo.DeleteCascade(s.ctx, jabar.ID), utils.ErrProvinsiNotFound)
	})
}
