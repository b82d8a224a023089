package controllers

import (
	"github.com/gin-gonic/gin"
	"wilayah/internal/models/request_models"
	"wilayah/internal/services"
	"wilayah/pkg/utils"
)

type ProvinsiController struct {
	provinsiService services.ProvinsiServiceInterface
}

func NewProvinsiController(provinsiService services.ProvinsiServiceInterface) *ProvinsiController {
	return &ProvinsiController{
		provinsiService: provinsiService,
	}
}

// ListProvinsi godoc
// @Summary List provinsi
// @Description Fetch every provinsi ordered by nama
// @Tags Provinsi
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /provinsi [get]
func (p *ProvinsiController) ListProvinsi(c *gin.Context) {
	provinsis, err := p.provinsiService.ListProvinsi(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, provinsis, "Provinsi fetched successfully")
}

// GetProvinsi godoc
// @Summary Get provinsi
// @Tags Provinsi
// @Produce json
// @Param id path int true "Provinsi ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /provinsi/{id} [get]
func (p *ProvinsiController) GetProvinsi(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	provinsi, err := p.provinsiService.GetProvinsi(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, provinsi, "Provinsi fetched successfully")
}

// CreateProvinsi godoc
// @Summary Create provinsi
// @Tags Provinsi
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param nama formData string true "Nama provinsi"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /provinsi [post]
func (p *ProvinsiController) CreateProvinsi(c *gin.Context) {
	var req request_models.ProvinsiRequest
	if !bind(c, &req) {
		return
	}

	provinsi, err := p.provinsiService.CreateProvinsi(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, provinsi, "Provinsi berhasil ditambahkan!")
}

// UpdateProvinsi godoc
// @Summary Update provinsi
// @Tags Provinsi
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path int true "Provinsi ID"
// @Param nama formData string true "Nama provinsi"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /provinsi/{id} [put]
func (p *ProvinsiController) UpdateProvinsi(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := p.provinsiService.GetProvinsi(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.ProvinsiRequest
	if !bind(c, &req) {
		return
	}

	provinsi, err := p.provinsiService.UpdateProvinsi(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, provinsi, "Provinsi berhasil diperbarui")
}

// DeleteProvinsi godoc
// @Summary Delete provinsi
// @Description Deletes the provinsi with its kabupaten and penduduk
// @Tags Provinsi
// @Produce json
// @Param id path int true "Provinsi ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /provinsi/{id} [delete]
func (p *ProvinsiController) DeleteProvinsi(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := p.provinsiService.DeleteProvinsi(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Provinsi berhasil dihapus")
}
