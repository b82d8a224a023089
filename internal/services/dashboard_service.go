package services

import (
	"context"

	"go.uber.org/zap"
	resp "wilayah/internal/models/response_models"
	"wilayah/internal/repositories"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo      repositories.DashboardRepository
	provinsi  ProvinsiServiceInterface
	kabupaten KabupatenServiceInterface
	penduduk  PendudukServiceInterface
	log       *zap.Logger
}

func NewDashboardService(
	repo repositories.DashboardRepository,
	provinsi ProvinsiServiceInterface,
	kabupaten KabupatenServiceInterface,
	penduduk PendudukServiceInterface,
	log *zap.Logger,
) DashboardService {
	return &dashboardService{
		repo:      repo,
		provinsi:  provinsi,
		kabupaten: kabupaten,
		penduduk:  penduduk,
		log:       log.Named("dashboard"),
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context) (*resp.DashboardReport, error) {
	// ---------- Core counts ----------
	totalProvinsi, err := s.repo.CountProvinsi(ctx)
	if err != nil {
		return nil, storageError(s.log, "count provinsi", err)
	}

	totalKabupaten, err := s.repo.CountKabupaten(ctx)
	if err != nil {
		return nil, storageError(s.log, "count kabupaten", err)
	}

	totalPenduduk, err := s.repo.CountPenduduk(ctx)
	if err != nil {
		return nil, storageError(s.log, "count penduduk", err)
	}

	totalJumlah, err := s.repo.SumJumlahPenduduk(ctx)
	if err != nil {
		return nil, storageError(s.log, "sum jumlah_penduduk", err)
	}

	// ---------- Per provinsi ----------
	rows, err := s.repo.SummaryPerProvinsi(ctx)
	if err != nil {
		return nil, storageError(s.log, "summary per provinsi", err)
	}
	perProvinsi := make([]resp.ProvinsiSummary, 0, len(rows))
	for _, row := range rows {
		perProvinsi = append(perProvinsi, resp.ProvinsiSummary{
			ProvinsiID:        row.ProvinsiID,
			Nama:              row.Nama,
			KabupatenCount:    row.KabupatenCount,
			JumlahPenduduk:    row.JumlahPenduduk,
			PendudukTerdaftar: row.PendudukTerdaftar,
		})
	}

	// ---------- Listings ----------
	provinsis, err := s.provinsi.ListProvinsi(ctx)
	if err != nil {
		return nil, err
	}
	kabupatens, err := s.kabupaten.ListKabupaten(ctx)
	if err != nil {
		return nil, err
	}
	penduduks, err := s.penduduk.ListPenduduk(ctx)
	if err != nil {
		return nil, err
	}

	return &resp.DashboardReport{
		KPIs: resp.KPIBlock{
			TotalProvinsi:       totalProvinsi,
			TotalKabupaten:      totalKabupaten,
			TotalPenduduk:       totalPenduduk,
			TotalJumlahPenduduk: totalJumlah,
		},
		PerProvinsi: perProvinsi,
		Provinsis:   provinsis,
		Kabupatens:  kabupatens,
		Penduduks:   penduduks,
	}, nil
}
