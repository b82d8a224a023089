package account_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wilayah/internal/api/controllers"
	"wilayah/internal/config"
	"wilayah/internal/repositories"
	"wilayah/internal/services"
	mem "wilayah/pkg/memcache"
	"wilayah/pkg/middleware"
	"wilayah/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenManager, provideAuthMiddleware,
	controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked, log)
}

func provideAuthMiddleware(tokens *utils.TokenManager, revoked mem.RevokedTokenStore) gin.HandlerFunc {
	return middleware.JWTAuthMiddleware(tokens, revoked)
}
