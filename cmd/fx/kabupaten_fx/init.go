package kabupaten_fx

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
	provideKabupatenRepo, provideKabupatenService, controllers.NewKabupatenController)

func provideKabupatenRepo(db *gorm.DB) repositories.KabupatenRepository {
	return repositories.NewKabupatenRepository(db)
}

func provideKabupatenService(
	kabupatenRepo repositories.KabupatenRepository,
	provinsiRepo repositories.ProvinsiRepository,
	log *zap.Logger,
	m *metrics.Metrics,
) services.KabupatenServiceInterface {
	return services.NewKabupatenService(kabupatenRepo, provinsiRepo, log, m)
}
