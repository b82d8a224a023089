package config_fx

import (
	"go.uber.org/fx"
	"wilayah/internal/config"
)

// Module supplies the configuration loaded from envFile and the process
// environment.
func Module(envFile string) fx.Option {
	return fx.Provide(func() (*config.Config, error) {
		return config.Load(envFile)
	})
}
