package penduduk_fx

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
	providePendudukRepo, providePendudukService, controllers.NewPendudukController)

func providePendudukRepo(db *gorm.DB) repositories.PendudukRepository {
	return repositories.NewPendudukRepository(db)
}

func providePendudukService(
	pendudukRepo repositories.PendudukRepository,
	kabupatenRepo repositories.KabupatenRepository,
	provinsiRepo repositories.ProvinsiRepository,
	log *zap.Logger,
	m *metrics.Metrics,
) services.PendudukServiceInterface {
	return services.NewPendudukService(pendudukRepo, kabupatenRepo, provinsiRepo, log, m)
}
