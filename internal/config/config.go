package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devJWTSecret = "wilayah-dev-secret"

type Config struct {
	AppEnv      string
	ServiceName string
	Port        string

	DBDriver    string
	PostgresURL string
	SQLitePath  string

	JWTSecret string
	JWTTTL    time.Duration

	RedisURL    string
	CORSOrigins []string

	OtelEnabled     bool
	OtelEndpoint    string
	OtelInsecure    bool
	OtelSampleRatio float64
}

func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

// Load reads envFile (when present) into the process environment and builds
// the configuration from environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppEnv:          v.GetString("APP_ENV"),
		ServiceName:     v.GetString("SERVICE_NAME"),
		Port:            v.GetString("PORT"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		PostgresURL:     v.GetString("POSTGRES_URL"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		RedisURL:        v.GetString("REDIS_URL"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
		OtelEnabled:     v.GetBool("OTEL_ENABLED"),
		OtelEndpoint:    v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelInsecure:    v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
		OtelSampleRatio: v.GetFloat64("OTEL_SAMPLER_RATIO"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_NAME", "wilayah")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SQLITE_PATH", "wilayah.db")
	v.SetDefault("JWT_TTL", "60m")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SAMPLER_RATIO", 1.0)
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when DB_DRIVER=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", c.DBDriver)
	}

	if c.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		c.JWTSecret = devJWTSecret
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	if c.OtelSampleRatio < 0 {
		c.OtelSampleRatio = 0
	}
	if c.OtelSampleRatio > 1 {
		c.OtelSampleRatio = 1
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
