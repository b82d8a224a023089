package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"wilayah/internal/models/db_models"
	"wilayah/internal/models/request_models"
	"wilayah/internal/models/response_models"
	"wilayah/internal/repositories"
	"wilayah/pkg/metrics"
	"wilayah/pkg/utils"
)

type ProvinsiServiceInterface interface {
	ListProvinsi(ctx context.Context) ([]response_models.ProvinsiResponse, error)
	GetProvinsi(ctx context.Context, id uint) (response_models.ProvinsiResponse, error)
	CreateProvinsi(ctx context.Context, req request_models.ProvinsiRequest) (response_models.ProvinsiResponse, error)
	UpdateProvinsi(ctx context.Context, id uint, req request_models.ProvinsiRequest) (response_models.ProvinsiResponse, error)
	// DeleteProvinsi also removes the provinsi's kabupaten and penduduk.
	DeleteProvinsi(ctx context.Context, id uint) error
}

type ProvinsiService struct {
	provinsiRepository repositories.ProvinsiRepository
	log                *zap.Logger
	metrics            *metrics.Metrics
}

func NewProvinsiService(provinsiRepository repositories.ProvinsiRepository, log *zap.Logger, m *metrics.Metrics) ProvinsiServiceInterface {
	return &ProvinsiService{
		provinsiRepository: provinsiRepository,
		log:                log.Named("provinsi"),
		metrics:            m,
	}
}

func (p *ProvinsiService) ListProvinsi(ctx context.Context) ([]response_models.ProvinsiResponse, error) {
	provinsis, err := p.provinsiRepository.List(ctx)
	if err != nil {
		return nil, storageError(p.log, "list provinsi", err)
	}

	out := make([]response_models.ProvinsiResponse, 0, len(provinsis))
	for i := range provinsis {
		out = append(out, toProvinsiResponse(&provinsis[i]))
	}
	return out, nil
}

func (p *ProvinsiService) GetProvinsi(ctx context.Context, id uint) (response_models.ProvinsiResponse, error) {
	provinsi, err := p.findExisting(ctx, id)
	if err != nil {
		return response_models.ProvinsiResponse{}, err
	}
	return toProvinsiResponse(provinsi), nil
}

func (p *ProvinsiService) CreateProvinsi(ctx context.Context, req request_models.ProvinsiRequest) (response_models.ProvinsiResponse, error) {
	req.Nama = strings.TrimSpace(req.Nama)
	if err := utils.ValidateStruct(req); err != nil {
		return response_models.ProvinsiResponse{}, err
	}

	provinsi := &db_models.Provinsi{Nama: req.Nama}
	if err := p.provinsiRepository.Insert(ctx, provinsi); err != nil {
		return response_models.ProvinsiResponse{}, storageError(p.log, "insert provinsi", err)
	}

	p.metrics.RecordMutation("provinsi", "create")
	p.log.Info("provinsi created", zap.Uint("id", provinsi.ID))
	return toProvinsiResponse(provinsi), nil
}

func (p *ProvinsiService) UpdateProvinsi(ctx context.Context, id uint, req request_models.ProvinsiRequest) (response_models.ProvinsiResponse, error) {
	provinsi, err := p.findExisting(ctx, id)
	if err != nil {
		return response_models.ProvinsiResponse{}, err
	}

	req.Nama = strings.TrimSpace(req.Nama)
	if err := utils.ValidateStruct(req); err != nil {
		return response_models.ProvinsiResponse{}, err
	}

	provinsi.Nama = req.Nama
	if err := p.provinsiRepository.Update(ctx, provinsi); err != nil {
		return response_models.ProvinsiResponse{}, storageError(p.log, "update provinsi", err)
	}

	p.metrics.RecordMutation("provinsi", "update")
	return toProvinsiResponse(provinsi), nil
}

func (p *ProvinsiService) DeleteProvinsi(ctx context.Context, id uint) error {
	if _, err := p.findExisting(ctx, id); err != nil {
		return err
	}

	if err := p.provinsiRepository.DeleteCascade(ctx, id); err != nil {
		return storageError(p.log, "delete provinsi", err)
	}

	p.metrics.RecordMutation("provinsi", "delete")
	p.log.Info("provinsi deleted", zap.Uint("id", id))
	return nil
}

func (p *ProvinsiService) findExisting(ctx context.Context, id uint) (*db_models.Provinsi, error) {
	provinsi, err := p.provinsiRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(p.log, "find provinsi", err)
	}
	if provinsi == nil {
		return nil, utils.ErrProvinsiNotFound
	}
	return provinsi, nil
}
