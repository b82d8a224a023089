package controllers

import (
	"github.com/gin-gonic/gin"
	"wilayah/internal/models/request_models"
	"wilayah/internal/services"
	"wilayah/pkg/utils"
)

type PendudukController struct {
	pendudukService services.PendudukServiceInterface
}

func NewPendudukController(pendudukService services.PendudukServiceInterface) *PendudukController {
	return &PendudukController{
		pendudukService: pendudukService,
	}
}

func (p *PendudukController) ListPenduduk(c *gin.Context) {
	penduduks, err := p.pendudukService.ListPenduduk(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, penduduks, "Penduduk fetched successfully")
}

func (p *PendudukController) GetPenduduk(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	penduduk, err := p.pendudukService.GetPenduduk(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, penduduk, "Penduduk fetched successfully")
}

// CreatePenduduk godoc
// @Summary Register a resident
// @Tags Penduduk
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param nama formData string true "Nama"
// @Param nik formData string true "NIK (max 20 characters, unique)"
// @Param umur formData int true "Umur"
// @Param alamat formData string true "Alamat"
// @Param provinsi_id formData int true "Provinsi ID"
// @Param kabupaten_id formData int true "Kabupaten ID"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /penduduk [post]
func (p *PendudukController) CreatePenduduk(c *gin.Context) {
	var req request_models.PendudukRequest
	if !bind(c, &req) {
		return
	}

	penduduk, err := p.pendudukService.CreatePenduduk(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, penduduk, "Penduduk berhasil ditambahkan.")
}

func (p *PendudukController) UpdatePenduduk(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// missing records answer 404 before the body is looked at
	if _, err := p.pendudukService.GetPenduduk(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.PendudukRequest
	if !bind(c, &req) {
		return
	}

	penduduk, err := p.pendudukService.UpdatePenduduk(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, penduduk, "Data penduduk berhasil diperbarui.")
}

func (p *PendudukController) DeletePenduduk(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := p.pendudukService.DeletePenduduk(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Penduduk berhasil dihapus.")
}
