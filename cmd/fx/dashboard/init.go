package dashboard

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wilayah/internal/api/controllers"
	"wilayah/internal/repositories"
	"wilayah/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, controllers.NewDashboardController,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	provinsi services.ProvinsiServiceInterface,
	kabupaten services.KabupatenServiceInterface,
	penduduk services.PendudukServiceInterface,
	log *zap.Logger,
) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, provinsi, kabupaten, penduduk, log)
}
