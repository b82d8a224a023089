package provinsi_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wilayah/internal/api/controllers"
	"wilayah/internal/repositories"
	"wilayah/internal/services"
	"wilayah/pkg/metrics"
)

var Module = fx.Provide(
	NewProvinsiService, NewProvinsiRepo, controllers.NewProvinsiController)

func NewProvinsiService(repo repositories.ProvinsiRepository, log *zap.Logger, m *metrics.Metrics) services.ProvinsiServiceInterface {
	return services.NewProvinsiService(repo, log, m)
}

func NewProvinsiRepo(db *gorm.DB) repositories.ProvinsiRepository {
	return repositories.NewProvinsiRepository(db)
}
