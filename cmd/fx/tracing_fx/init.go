package tracing_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wilayah/internal/config"
	"wilayah/internal/infra"
)

var Module = fx.Invoke(registerTracing)

func registerTracing(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) error {
	shutdown, err := infra.InitTracing(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
