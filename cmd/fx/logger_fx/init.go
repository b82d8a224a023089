package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"wilayah/internal/config"
	"wilayah/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("service", cfg.ServiceName))
	zap.ReplaceGlobals(log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}
