package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a zap logger for the given APP_ENV. Production gets JSON output at
// info level, everything else a development console logger at debug level.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
