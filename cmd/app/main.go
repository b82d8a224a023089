package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wilayah/cmd/fx/account_fx"
	"wilayah/cmd/fx/config_fx"
	"wilayah/cmd/fx/controllers_fx"
	"wilayah/cmd/fx/dashboard"
	"wilayah/cmd/fx/db_fx"
	"wilayah/cmd/fx/kabupaten_fx"
	"wilayah/cmd/fx/logger_fx"
	"wilayah/cmd/fx/memcache_fx"
	"wilayah/cmd/fx/metrics_fx"
	"wilayah/cmd/fx/penduduk_fx"
	"wilayah/cmd/fx/provinsi_fx"
	"wilayah/cmd/fx/tracing_fx"
	"wilayah/internal/api"
	"wilayah/internal/config"
	"wilayah/internal/infra"
	"wilayah/pkg/logger"
	"wilayah/pkg/metrics"
)

type rootOptions struct {
	envFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{envFile: ".env"}

	root := &cobra.Command{
		Use:          "wilayah",
		Short:        "Regional administration API: provinsi, kabupaten and penduduk",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", opts.envFile, "dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCmd(&opts),
		newMigrateCmd(&opts),
		newSeedCmd(&opts),
	)
	return root
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			app := fx.New(
				config_fx.Module(opts.envFile),
				logger_fx.Module,
				metrics_fx.Module,
				tracing_fx.Module,
				db_fx.Module,
				memcache_fx.Module,
				provinsi_fx.Module,
				kabupaten_fx.Module,
				penduduk_fx.Module,
				account_fx.Module,
				dashboard.Module,
				controllers_fx.Module,

				fx.Invoke(infra.AutoMigrate),
				fx.Provide(ProvideRouter),
				fx.Invoke(StartServer),
			)
			if err := app.Err(); err != nil {
				return err
			}

			if err := app.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()

			stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer stopCancel()
			return app.Stop(stopCtx)
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(opts, func(db *gorm.DB, log *zap.Logger) error {
				if err := infra.AutoMigrate(db); err != nil {
					return err
				}
				log.Info("migration completed")
				return nil
			})
		},
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample provinsi, kabupaten and penduduk rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(opts, func(db *gorm.DB, log *zap.Logger) error {
				if err := infra.AutoMigrate(db); err != nil {
					return err
				}
				return infra.SeedDatabase(cmd.Context(), db, log)
			})
		},
	}
}

func withDatabase(opts *rootOptions, fn func(db *gorm.DB, log *zap.Logger) error) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := infra.InitDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, log)

	return fn(db, log)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	handlers api.Handlers,
	auth gin.HandlerFunc,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewEngine(api.EngineOptions{
		ServiceName: cfg.ServiceName,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
		Metrics:     m,
		Gatherer:    reg,
		Tracing:     cfg.OtelEnabled,
	}, handlers, auth)
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
