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

type PendudukServiceInterface interface {
	ListPenduduk(ctx context.Context) ([]response_models.PendudukResponse, error)
	GetPenduduk(ctx context.Context, id uint) (response_models.PendudukResponse, error)
	CreatePenduduk(ctx context.Context, req request_models.PendudukRequest) (response_models.PendudukResponse, error)
	UpdatePenduduk(ctx context.Context, id uint, req request_models.PendudukRequest) (response_models.PendudukResponse, error)
	DeletePenduduk(ctx context.Context, id uint) error
}

type PendudukService struct {
	pendudukRepository  repositories.PendudukRepository
	kabupatenRepository repositories.KabupatenRepository
	provinsiRepository  repositories.ProvinsiRepository
	log                 *zap.Logger
	metrics             *metrics.Metrics
}

func NewPendudukService(
	pendudukRepository repositories.PendudukRepository,
	kabupatenRepository repositories.KabupatenRepository,
	provinsiRepository repositories.ProvinsiRepository,
	log *zap.Logger,
	m *metrics.Metrics,
) PendudukServiceInterface {
	return &PendudukService{
		pendudukRepository:  pendudukRepository,
		kabupatenRepository: kabupatenRepository,
		provinsiRepository:  provinsiRepository,
		log:                 log.Named("penduduk"),
		metrics:             m,
	}
}

func (p *PendudukService) ListPenduduk(ctx context.Context) ([]response_models.PendudukResponse, error) {
	penduduks, err := p.pendudukRepository.List(ctx)
	if err != nil {
		return nil, storageError(p.log, "list penduduk", err)
	}

	out := make([]response_models.PendudukResponse, 0, len(penduduks))
	for i := range penduduks {
		out = append(out, toPendudukResponse(&penduduks[i]))
	}
	return out, nil
}

func (p *PendudukService) GetPenduduk(ctx context.Context, id uint) (response_models.PendudukResponse, error) {
	penduduk, err := p.findExisting(ctx, id)
	if err != nil {
		return response_models.PendudukResponse{}, err
	}
	return toPendudukResponse(penduduk), nil
}

func (p *PendudukService) CreatePenduduk(ctx context.Context, req request_models.PendudukRequest) (response_models.PendudukResponse, error) {
	provinsi, kabupaten, err := p.validate(ctx, &req, 0)
	if err != nil {
		return response_models.PendudukResponse{}, err
	}

	penduduk := &db_models.Penduduk{}
	applyPendudukRequest(penduduk, req)
	if err := p.pendudukRepository.Insert(ctx, penduduk); err != nil {
		return response_models.PendudukResponse{}, storageError(p.log, "insert penduduk", err)
	}

	p.metrics.RecordMutation("penduduk", "create")
	p.log.Info("penduduk created", zap.Uint("id", penduduk.ID), zap.Uint("kabupaten_id", penduduk.KabupatenID))

	penduduk.Provinsi, penduduk.Kabupaten = provinsi, kabupaten
	return toPendudukResponse(penduduk), nil
}

func (p *PendudukService) UpdatePenduduk(ctx context.Context, id uint, req request_models.PendudukRequest) (response_models.PendudukResponse, error) {
	penduduk, err := p.findExisting(ctx, id)
	if err != nil {
		return response_models.PendudukResponse{}, err
	}

	provinsi, kabupaten, err := p.validate(ctx, &req, penduduk.ID)
	if err != nil {
		return response_models.PendudukResponse{}, err
	}

	applyPendudukRequest(penduduk, req)
	penduduk.Provinsi, penduduk.Kabupaten = nil, nil
	if err := p.pendudukRepository.Update(ctx, penduduk); err != nil {
		return response_models.PendudukResponse{}, storageError(p.log, "update penduduk", err)
	}

	p.metrics.RecordMutation("penduduk", "update")

	penduduk.Provinsi, penduduk.Kabupaten = provinsi, kabupaten
	return toPendudukResponse(penduduk), nil
}

func (p *PendudukService) DeletePenduduk(ctx context.Context, id uint) error {
	if _, err := p.findExisting(ctx, id); err != nil {
		return err
	}

	if err := p.pendudukRepository.Delete(ctx, id); err != nil {
		return storageError(p.log, "delete penduduk", err)
	}

	p.metrics.RecordMutation("penduduk", "delete")
	return nil
}

// validate normalizes req and checks field rules, nik uniqueness (ignoring
// selfID) and both references. The kabupaten must lie in the given provinsi.
func (p *PendudukService) validate(ctx context.Context, req *request_models.PendudukRequest, selfID uint) (*db_models.Provinsi, *db_models.Kabupaten, error) {
	req.Nama = strings.TrimSpace(req.Nama)
	req.Nik = strings.TrimSpace(req.Nik)
	req.Alamat = strings.TrimSpace(req.Alamat)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, nil, err
	}

	taken, err := p.pendudukRepository.NikTaken(ctx, req.Nik, selfID)
	if err != nil {
		return nil, nil, storageError(p.log, "check nik", err)
	}
	if taken {
		return nil, nil, utils.ErrNikAlreadyExists
	}

	provinsi, err := p.provinsiRepository.FindByID(ctx, req.ProvinsiID)
	if err != nil {
		return nil, nil, storageError(p.log, "find provinsi", err)
	}
	if provinsi == nil {
		return nil, nil, utils.ErrProvinsiReferenceMissing
	}

	kabupaten, err := p.kabupatenRepository.FindByID(ctx, req.KabupatenID)
	if err != nil {
		return nil, nil, storageError(p.log, "find kabupaten", err)
	}
	if kabupaten == nil {
		return nil, nil, utils.ErrKabupatenReferenceMissing
	}
	if kabupaten.ProvinsiID != provinsi.ID {
		return nil, nil, utils.NewValidationError("kabupaten %d does not belong to provinsi %d", kabupaten.ID, provinsi.ID)
	}

	return provinsi, kabupaten, nil
}

func (p *PendudukService) findExisting(ctx context.Context, id uint) (*db_models.Penduduk, error) {
	penduduk, err := p.pendudukRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(p.log, "find penduduk", err)
	}
	if penduduk == nil {
		return nil, utils.ErrPendudukNotFound
	}
	return penduduk, nil
}

func applyPendudukRequest(penduduk *db_models.Penduduk, req request_models.PendudukRequest) {
	penduduk.Nama = req.Nama
	penduduk.Nik = req.Nik
	penduduk.Umur = *req.Umur
	penduduk.Alamat = req.Alamat
	penduduk.ProvinsiID = req.ProvinsiID
	penduduk.KabupatenID = req.KabupatenID
}
