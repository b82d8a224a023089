package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	mem "wilayah/pkg/memcache"
	"wilayah/pkg/utils"
)

type failingStore struct{}

func (failingStore) Revoke(context.Context, string, time.Duration) error { return nil }

func (failingStore) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func newTestRouter(tokens *utils.TokenManager, store mem.RevokedTokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/private", JWTAuthMiddleware(tokens, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"account_id": c.GetUint(ContextAccountID),
			"role":       c.GetString(ContextRole),
		})
	})
	return r
}

func get(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("mw-secret", time.Hour)
	store := mem.NewRevokedTokens()
	r := newTestRouter(tokens, store)

	token, _, err := tokens.CreateToken(3, "user")
	require.NoError(t, err)

	require.Equal(t, http.StatusUnauthorized, get(r, nil).Code)
	require.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": token}).Code)
	require.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": "Bearer nope"}).Code)

	rec := get(r, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"account_id":3,"role":"user"}`, rec.Body.String())

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, store.Revoke(context.Background(), claims.ID, time.Minute))
	require.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": "Bearer " + token}).Code)
}

func TestJWTAuthMiddlewareStoreFailure(t *testing.T) {
	tokens := utils.NewTokenManager("mw-secret", time.Hour)
	r := newTestRouter(tokens, failingStore{})

	token, _, err := tokens.CreateToken(3, "user")
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, get(r, map[string]string{"Authorization": "Bearer " + token}).Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newTestRouter(utils.NewTokenManager("mw-secret", time.Hour), mem.NewRevokedTokens())

	rec := get(r, map[string]string{"X-Trace-ID": "abc-123"})
	require.Equal(t, "abc-123", rec.Header().Get("X-Trace-ID"))
	require.Contains(t, rec.Body.String(), `"trace_id":"abc-123"`)

	rec = get(r, nil)
	require.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
