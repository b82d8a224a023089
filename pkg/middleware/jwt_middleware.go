package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	mem "wilayah/pkg/memcache"
	"wilayah/pkg/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextAccountID = "account_id"
	ContextRole      = "role"
	ContextClaims    = "claims"
)

func JWTAuthMiddleware(tokens *utils.TokenManager, revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			zap.L().Error("revocation lookup failed", zap.Error(err))
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if isRevoked {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
