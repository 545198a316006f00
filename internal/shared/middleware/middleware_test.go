package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/shared/config"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	return cfg
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func accessToken(t *testing.T, role string) string {
	return signToken(t, jwt.MapClaims{
		"user_id": "b2c6a1de-0000-4000-8000-000000000001",
		"email":   "user@example.com",
		"role":    role,
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
}

func protectedRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	handlers := []gin.HandlerFunc{JWTAuthWithConfig(cfg)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	engine.GET("/protected", handlers...)
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTAuthMissingHeader(t *testing.T) {
	engine := protectedRouter(testConfig())
	recorder := doRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	engine := protectedRouter(testConfig())
	recorder := doRequest(engine, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthInvalidSignature(t *testing.T) {
	engine := protectedRouter(testConfig())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "someone",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	recorder := doRequest(engine, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	engine := protectedRouter(testConfig())

	expired := signToken(t, jwt.MapClaims{
		"user_id": "someone",
		"type":    "access",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	recorder := doRequest(engine, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	engine := protectedRouter(testConfig())

	refresh := signToken(t, jwt.MapClaims{
		"user_id": "someone",
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	recorder := doRequest(engine, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	engine := protectedRouter(testConfig())

	recorder := doRequest(engine, "Bearer "+accessToken(t, "USER"))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "b2c6a1de")
}

func TestRequireAdminBlocksUsers(t *testing.T) {
	engine := protectedRouter(testConfig(), RequireAdmin())

	recorder := doRequest(engine, "Bearer "+accessToken(t, "USER"))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	engine := protectedRouter(testConfig(), RequireAdmin())

	recorder := doRequest(engine, "Bearer "+accessToken(t, "ADMIN"))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
