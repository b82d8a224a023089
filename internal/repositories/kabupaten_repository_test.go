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

type KabupatenRepositorySuite struct {
	suite.Suite
	db       *gorm.DB
	repo     KabupatenRepository
	ctx      context.Context
	provinsi *db_models.Provinsi
}

func (s *KabupatenRepositorySuite) SetupTest() {
	s.db = testutil.DB(s.T())
	s.repo = NewKabupatenRepository(s.db)
	s.ctx = context.Background()
	s.provinsi = testutil.CreateProvinsi(s.T(), s.db, "Jawa Barat")
}

func TestKabupatenRepositorySuite(t *testing.T) {
	suite.Run(t, new(KabupatenRepositorySuite))
}

func (s *KabupatenRepositorySuite) TestInsertPreloadsProvinsiOnFind() {
	kabupaten := &db_models.Kabupaten{Nama: "Bandung", ProvinsiID: s.provinsi.ID, JumlahPenduduk: 2500000}
	s.Require().NoError(s.repo.Insert(s.ctx, kabupaten))

	found, err := s.repo.FindByID(s.ctx, kabupaten.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(int64(2500000), found.JumlahPenduduk)
	s.Require().NotNil(found.Provinsi)
	s.Equal("Jawa Barat", found.Provinsi.Nama)
}

func (s *KabupatenRepositorySuite) TestInsertRejectsUnknownProvinsi() {
	err := s.repo.Insert(s.ctx, &db_models.Kabupaten{Nama: "Atlantis", ProvinsiID: 404})
	s.ErrorIs(err, utils.ErrProvinsiReferenceMissing)
	s.ErrorIs(err, utils.ErrForeignKey)
}

func (s *KabupatenRepositorySuite) TestUpdateMovesPenduduk() {
	banten := testutil.CreateProvinsi(s.T(), s.db, "Banten")
	kabupaten := testutil.CreateKabupaten(s.T(), s.db, s.provinsi.ID, "Tangerang", 0)
	penduduk := testutil.CreatePenduduk(s.T(), s.db, kabupaten, "3601")

	kabupaten.ProvinsiID = banten.ID
	kabupaten.JumlahPenduduk = 2000000
	s.Require().NoError(s.repo.Update(s.ctx, kabupaten))

	var reloaded db_models.Penduduk
	s.Require().NoError(s.db.First(&reloaded, penduduk.ID).Error)
	s.Equal(banten.ID, reloaded.ProvinsiID)

	found, err := s.repo.FindByID(s.ctx, kabupaten.ID)
	s.Require().NoError(err)
	s.Equal(int64(2000000), found.JumlahPenduduk)
	s.Equal(banten.ID, found.ProvinsiID)
}

func (s *KabupatenRepositorySuite) TestUpdateUnknown() {
	err := s.repo.Update(s.ctx, &db_models.Kabupaten{
		BaseModel:  db_models.BaseModel{ID: 77},
		Nama:       "Nowhere",
		ProvinsiID: s.provinsi.ID,
	})
	s.ErrorIs(err, utils.ErrKabupatenNotFound)
}

func (s *KabupatenRepositorySuite) TestDeleteCascade() {
	bandung := testutil.CreateKabupaten(s.T(), s.db, s.provinsi.ID, "Bandung", 0)
	bogor := testutil.CreateKabupaten(s.T(), s.db, s.provinsi.ID, "Bogor", 0)
	testutil.CreatePenduduk(s.T(), s.db, bandung, "1")
	testutil.CreatePenduduk(s.T(), s.db, bandung, "2")
	testutil.CreatePenduduk(s.T(), s.db, bogor, "3")

	s.Require().NoError(s.repo.DeleteCascade(s.ctx, bandung.ID))

	s.Equal(int64(1), testutil.Count(s.T(), s.db, &db_models.Kabupaten{}))
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &db_models.Penduduk{}))
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &db_models.Provinsi{}))

	s.ErrorIs(s.repo.DeleteCascade(s.ctx, bandung.ID), utils.ErrKabupatenNotFound)
}

func (s *KabupatenRepositorySuite) TestList() {
	testutil.CreateKabupaten(s.T(), s.db, s.provinsi.ID, "Bandung", 1)
	testutil.CreateKabupaten(s.T(), s.db, s.provinsi.ID, "Bogor", 2)

	kabupatens, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(kabupatens, 2)
	s.Equal("Bandung", kabupatens[0].Nama)
	s.NotNil(kabupatens[1].Provinsi)
}
