package controllers

import (
	"github.com/gin-gonic/gin"
	"wilayah/internal/services"
	"wilayah/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get dashboard report
// @Description Totals, per-provinsi summary and the provinsi/kabupaten/penduduk listings
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	report, err := d.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}
