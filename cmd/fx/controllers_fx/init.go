package controllers_fx

import (
	"go.uber.org/fx"
	"wilayah/internal/api"
	"wilayah/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(provideHandlers))

func provideHandlers(
	account *controllers.AccountController,
	provinsi *controllers.ProvinsiController,
	kabupaten *controllers.KabupatenController,
	penduduk *controllers.PendudukController,
	dashboard *controllers.DashboardController,
) api.Handlers {
	return api.Handlers{
		Account:   account,
		Provinsi:  provinsi,
		Kabupaten: kabupaten,
		Penduduk:  penduduk,
		Dashboard: dashboard,
	}
}
