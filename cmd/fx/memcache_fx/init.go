package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wilayah/internal/config"
	"wilayah/internal/infra"
	mem "wilayah/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokenStore)

// Logged-out tokens live in redis when REDIS_URL is set so every replica sees
// them; otherwise they stay in process memory.
func provideRevokedTokenStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.RevokedTokenStore, error) {
	if cfg.RedisURL == "" {
		log.Info("revoked token store: in-memory")
		return mem.NewRevokedTokens(), nil
	}

	client, err := infra.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Info("revoked token store: redis")
	return mem.NewRedisRevokedTokens(client), nil
}
