package services

import (
	"errors"

	"go.uber.org/zap"
	"wilayah/internal/models/db_models"
	"wilayah/internal/models/response_models"
	"wilayah/pkg/utils"
)

// storageError passes domain errors raised by the repositories through and
// hides everything else behind ErrDatabaseError after logging it.
func storageError(log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, utils.ErrNotFound),
		errors.Is(err, utils.ErrConflict),
		errors.Is(err, utils.ErrForeignKey),
		errors.Is(err, utils.ErrValidation):
		return err
	}
	log.Error("storage operation failed", zap.String("op", op), zap.Error(err))
	return utils.ErrDatabaseError
}

func toProvinsiResponse(p *db_models.Provinsi) response_models.ProvinsiResponse {
	return response_models.ProvinsiResponse{
		ID:        p.ID,
		Nama:      p.Nama,
		CreatedAt: utils.FormatUnixWIB(p.CreatedAt),
		UpdatedAt: utils.FormatUnixWIB(p.UpdatedAt),
	}
}

func toKabupatenResponse(k *db_models.Kabupaten) response_models.KabupatenResponse {
	out := response_models.KabupatenResponse{
		ID:             k.ID,
		Nama:           k.Nama,
		ProvinsiID:     k.ProvinsiID,
		JumlahPenduduk: k.JumlahPenduduk,
		CreatedAt:      utils.FormatUnixWIB(k.CreatedAt),
		UpdatedAt:      utils.FormatUnixWIB(k.UpdatedAt),
	}
	if k.Provinsi != nil {
		provinsi := toProvinsiResponse(k.Provinsi)
		out.Provinsi = &provinsi
	}
	return out
}

func toPendudukResponse(p *db_models.Penduduk) response_models.PendudukResponse {
	out := response_models.PendudukResponse{
		ID:          p.ID,
		Nama:        p.Nama,
		Nik:         p.Nik,
		Umur:        p.Umur,
		Alamat:      p.Alamat,
		ProvinsiID:  p.ProvinsiID,
		KabupatenID: p.KabupatenID,
		CreatedAt:   utils.FormatUnixWIB(p.CreatedAt),
		UpdatedAt:   utils.FormatUnixWIB(p.UpdatedAt),
	}
	if p.Provinsi != nil {
		provinsi := toProvinsiResponse(p.Provinsi)
		out.Provinsi = &provinsi
	}
	if p.Kabupaten != nil {
		kabupaten := toKabupatenResponse(p.Kabupaten)
		out.Kabupaten = &kabupaten
	}
	return out
}
