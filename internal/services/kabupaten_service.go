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

type KabupatenServiceInterface interface {
	ListKabupaten(ctx context.Context) ([]response_models.KabupatenResponse, error)
	GetKabupaten(ctx context.Context, id uint) (response_models.KabupatenResponse, error)
	CreateKabupaten(ctx context.Context, req request_models.KabupatenRequest) (response_models.KabupatenResponse, error)
	UpdateKabupaten(ctx context.Context, id uint, req request_models.KabupatenRequest) (response_models.KabupatenResponse, error)
	// DeleteKabupaten also removes the kabupaten's penduduk.
	DeleteKabupaten(ctx context.Context, id uint) error
}

type KabupatenService struct {
	kabupatenRepository repositories.KabupatenRepository
	provinsiRepository  repositories.ProvinsiRepository
	log                 *zap.Logger
	metrics             *metrics.Metrics
}

func NewKabupatenService(
	kabupatenRepository repositories.KabupatenRepository,
	provinsiRepository repositories.ProvinsiRepository,
	log *zap.Logger,
	m *metrics.Metrics,
) KabupatenServiceInterface {
	return &KabupatenService{
		kabupatenRepository: kabupatenRepository,
		provinsiRepository:  provinsiRepository,
		log:                 log.Named("kabupaten"),
		metrics:             m,
	}
}

func (k *KabupatenService) ListKabupaten(ctx context.Context) ([]response_models.KabupatenResponse, error) {
	kabupatens, err := k.kabupatenRepository.List(ctx)
	if err != nil {
		return nil, storageError(k.log, "list kabupaten", err)
	}

	out := make([]response_models.KabupatenResponse, 0, len(kabupatens))
	for i := range kabupatens {
		out = append(out, toKabupatenResponse(&kabupatens[i]))
	}
	return out, nil
}

func (k *KabupatenService) GetKabupaten(ctx context.Context, id uint) (response_models.KabupatenResponse, error) {
	kabupaten, err := k.findExisting(ctx, id)
	if err != nil {
		return response_models.KabupatenResponse{}, err
	}
	return toKabupatenResponse(kabupaten), nil
}

func (k *KabupatenService) CreateKabupaten(ctx context.Context, req request_models.KabupatenRequest) (response_models.KabupatenResponse, error) {
	provinsi, err := k.validate(ctx, &req)
	if err != nil {
		return response_models.KabupatenResponse{}, err
	}

	kabupaten := &db_models.Kabupaten{
		Nama:           req.Nama,
		ProvinsiID:     req.ProvinsiID,
		JumlahPenduduk: jumlahPenduduk(req),
	}
	if err := k.kabupatenRepository.Insert(ctx, kabupaten); err != nil {
		return response_models.KabupatenResponse{}, storageError(k.log, "insert kabupaten", err)
	}

	k.metrics.RecordMutation("kabupaten", "create")
	k.log.Info("kabupaten created", zap.Uint("id", kabupaten.ID), zap.Uint("provinsi_id", kabupaten.ProvinsiID))

	kabupaten.Provinsi = provinsi
	return toKabupatenResponse(kabupaten), nil
}

func (k *KabupatenService) UpdateKabupaten(ctx context.Context, id uint, req request_models.KabupatenRequest) (response_models.KabupatenResponse, error) {
	kabupaten, err := k.findExisting(ctx, id)
	if err != nil {
		return response_models.KabupatenResponse{}, err
	}

	provinsi, err := k.validate(ctx, &req)
	if err != nil {
		return response_models.KabupatenResponse{}, err
	}

	kabupaten.Nama = req.Nama
	kabupaten.ProvinsiID = req.ProvinsiID
	kabupaten.JumlahPenduduk = jumlahPenduduk(req)
	kabupaten.Provinsi = nil
	if err := k.kabupatenRepository.Update(ctx, kabupaten); err != nil {
		return response_models.KabupatenResponse{}, storageError(k.log, "update kabupaten", err)
	}

	k.metrics.RecordMutation("kabupaten", "update")

	kabupaten.Provinsi = provinsi
	return toKabupatenResponse(kabupaten), nil
}

func (k *KabupatenService) DeleteKabupaten(ctx context.Context, id uint) error {
	if _, err := k.findExisting(ctx, id); err != nil {
		return err
	}

	if err := k.kabupatenRepository.DeleteCascade(ctx, id); err != nil {
		return storageError(k.log, "delete kabupaten", err)
	}

	k.metrics.RecordMutation("kabupaten", "delete")
	k.log.Info("kabupaten deleted", zap.Uint("id", id))
	return nil
}

// validate normalizes req, checks field rules and resolves the parent provinsi.
func (k *KabupatenService) validate(ctx context.Context, req *request_models.KabupatenRequest) (*db_models.Provinsi, error) {
	req.Nama = strings.TrimSpace(req.Nama)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	provinsi, err := k.provinsiRepository.FindByID(ctx, req.ProvinsiID)
	if err != nil {
		return nil, storageError(k.log, "find provinsi", err)
	}
	if provinsi == nil {
		return nil, utils.ErrProvinsiReferenceMissing
	}
	return provinsi, nil
}

func (k *KabupatenService) findExisting(ctx context.Context, id uint) (*db_models.Kabupaten, error) {
	kabupaten, err := k.kabupatenRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(k.log, "find kabupaten", err)
	}
	if kabupaten == nil {
		return nil, utils.ErrKabupatenNotFound
	}
	return kabupaten, nil
}

func jumlahPenduduk(req request_models.KabupatenRequest) int64 {
	if req.JumlahPenduduk == nil {
		return 0
	}
	return *req.JumlahPenduduk
}
