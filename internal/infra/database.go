package infra

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"wilayah/internal/config"
	"wilayah/internal/models/db_models"
)

// InitDatabase opens the configured database. Constraint violations are
// translated into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func InitDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresURL)
	case "sqlite":
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	level := gormLogger.Info
	if cfg.IsProduction() {
		level = gormLogger.Warn
	}
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite serialises writers; a single connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// SQLiteDSN enables foreign keys, which sqlite leaves off per connection.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Provinsi{},
		&db_models.Kabupaten{},
		&db_models.Penduduk{},
		&db_models.Account{},
	)
}

func CloseDatabase(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("close database connection", zap.Error(err))
		return
	}
	logger.Info("database connection closed")
}
