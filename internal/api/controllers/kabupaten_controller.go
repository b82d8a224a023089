package controllers

import (
	"github.com/gin-gonic/gin"
	"wilayah/internal/models/request_models"
	"wilayah/internal/services"
	"wilayah/pkg/utils"
)

type KabupatenController struct {
	kabupatenService services.KabupatenServiceInterface
}

func NewKabupatenController(kabupatenService services.KabupatenServiceInterface) *KabupatenController {
	return &KabupatenController{
		kabupatenService: kabupatenService,
	}
}

// ListKabupaten godoc
// @Summary List kabupaten
// @Description Fetch every kabupaten with its provinsi
// @Tags Kabupaten
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /kabupaten [get]
func (k *KabupatenController) ListKabupaten(c *gin.Context) {
	kabupatens, err := k.kabupatenService.ListKabupaten(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, kabupatens, "Kabupaten fetched successfully")
}

func (k *KabupatenController) GetKabupaten(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	kabupaten, err := k.kabupatenService.GetKabupaten(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, kabupaten, "Kabupaten fetched successfully")
}

// CreateKabupaten godoc
// @Summary Create kabupaten
// @Tags Kabupaten
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param nama formData string true "Nama kabupaten"
// @Param provinsi_id formData int true "Provinsi ID"
// @Param jumlah_penduduk formData int false "Jumlah penduduk (default 0)"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /kabupaten [post]
func (k *KabupatenController) CreateKabupaten(c *gin.Context) {
	var req request_models.KabupatenRequest
	if !bind(c, &req) {
		return
	}

	kabupaten, err := k.kabupatenService.CreateKabupaten(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, kabupaten, "Kabupaten berhasil ditambahkan!")
}

func (k *KabupatenController) UpdateKabupaten(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := k.kabupatenService.GetKabupaten(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.KabupatenRequest
	if !bind(c, &req) {
		return
	}

	kabupaten, err := k.kabupatenService.UpdateKabupaten(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, kabupaten, "Kabupaten berhasil diperbarui")
}

func (k *KabupatenController) DeleteKabupaten(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := k.kabupatenService.DeleteKabupaten(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Kabupaten berhasil dihapus")
}
