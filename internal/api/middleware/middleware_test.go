package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finara-labs/finara-backend/internal/api/middleware"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/mocks"
	"github.com/finara-labs/finara-backend/internal/ratelimit"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/", handlers...)
	return router
}

func serve(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemKey)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthConfig_Enabled(t *testing.T) {
	assert.False(t, middleware.AuthConfig{}.Enabled())
	assert.False(t, middleware.AuthConfig{APIKeys: []string{""}, JWTPublicKey: "  "}.Enabled())
	assert.True(t, middleware.AuthConfig{APIKeys: []string{"secret"}}.Enabled())
	assert.True(t, middleware.AuthConfig{JWTPublicKey: "pem"}.Enabled())
}

func TestOptionalAuth_NoCredentialsPassesThrough(t *testing.T) {
	router := newRouter(middleware.OptionalAuth(middleware.AuthConfig{}))

	rec := serve(router, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_APIKey(t *testing.T) {
	router := newRouter(middleware.OptionalAuth(middleware.AuthConfig{APIKeys: []string{"secret"}}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid key", header: "ApiKey secret", status: http.StatusOK},
		{name: "wrong key", header: "ApiKey other", status: http.StatusUnauthorized},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "malformed header", header: "secret", status: http.StatusUnauthorized},
		{name: "unsupported scheme", header: "Basic c2VjcmV0", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
			}
		})
	}
}

func TestAuth_JWT(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			Subject:   "bank-operator",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		var subject any
		router := gin.New()
		router.POST("/", middleware.Auth(cfg), func(c *gin.Context) {
			subject, _ = c.Get(middleware.AUTH_SUBJECT_KEY)
			c.Status(http.StatusOK)
		})

		rec := serve(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bank-operator", subject)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		rec := serve(newRouter(middleware.Auth(cfg)), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signed by another key", func(t *testing.T) {
		otherKey, _ := generateKeyPair(t)
		token := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "intruder"})

		rec := serve(newRouter(middleware.Auth(cfg)), "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_APIKeySubjectIsFingerprint(t *testing.T) {
	var subject, method any
	router := gin.New()
	router.POST("/", middleware.Auth(middleware.AuthConfig{APIKeys: []string{"first", "secret"}}), func(c *gin.Context) {
		subject, _ = c.Get(middleware.AUTH_SUBJECT_KEY)
		method, _ = c.Get(middleware.AUTH_TYPE_KEY)
		c.Status(http.StatusOK)
	})

	rec := serve(router, "ApiKey secret")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "apikey", method)
	assert.Regexp(t, `^apikey:[0-9a-f]{8}$`, subject)
	assert.NotContains(t, subject, "secret")
}

func TestAuth_JWTRejectsHMACAndBadKey(t *testing.T) {
	_, publicPEM := generateKeyPair(t)

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).SignedString([]byte(publicPEM))
	require.NoError(t, err)

	rec := serve(newRouter(middleware.Auth(middleware.AuthConfig{JWTPublicKey: publicPEM})), "Bearer "+hmacToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(newRouter(middleware.Auth(middleware.AuthConfig{JWTPublicKey: "not a pem"})), "Bearer "+hmacToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "PEM")
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), "10.0.0.1").Return(&ratelimit.Decision{Allowed: true, Remaining: 4}, nil)

		rec := serve(newRouter(middleware.RateLimit(limiter)), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Empty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("denied rounds retry up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), "10.0.0.1").Return(&ratelimit.Decision{Allowed: false, RetryAfter: 200 * time.Millisecond}, nil)

		rec := serve(newRouter(middleware.RateLimit(limiter)), "")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), `"code":"rate_limited"`)
	})

	t.Run("limiter failure lets request through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		rec := serve(newRouter(middleware.RateLimit(limiter)), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
