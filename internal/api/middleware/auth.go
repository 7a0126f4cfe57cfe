package middleware

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/subtle"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/finara-labs/finara-backend/internal/api/shared/errors"
	"github.com/finara-labs/finara-backend/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	authMethodJWT    = "jwt"
	authMethodAPIKey = "apikey"

	jwtLeeway = 30 * time.Second
)

// AuthConfig holds the credentials accepted on mutating routes
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Enabled reports whether any credential is configured
func (c AuthConfig) Enabled() bool {
	if strings.TrimSpace(c.JWTPublicKey) != "" {
		return true
	}
	for _, key := range c.APIKeys {
		if key != "" {
			return true
		}
	}
	return false
}

// principal is the caller identified by a valid Authorization header
type principal struct {
	method  string
	subject string
	claims  *jwt.RegisteredClaims
}

// authenticator checks Authorization headers. The public key is parsed once;
// a key that fails to parse rejects every bearer token with the parse error.
type authenticator struct {
	publicKey    *rsa.PublicKey
	publicKeyErr error
	apiKeys      [][]byte
	parser       *jwt.Parser
}

func newAuthenticator(cfg AuthConfig) *authenticator {
	a := &authenticator{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
			jwt.WithLeeway(jwtLeeway),
		),
	}

	if pemKey := strings.TrimSpace(cfg.JWTPublicKey); pemKey != "" {
		a.publicKey, a.publicKeyErr = parseRSAPublicKey(pemKey)
	} else {
		a.publicKeyErr = errors.New("JWT public key not configured")
	}

	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}

	return a
}

// authenticate resolves the caller from an "Bearer <jwt>" or "ApiKey <key>" header
func (a *authenticator) authenticate(header string) (*principal, error) {
	if header == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(header, " ")
	credentials = strings.TrimSpace(credentials)
	if !ok || credentials == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		return a.verifyToken(credentials)
	case "apikey":
		return a.verifyAPIKey(credentials)
	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

func (a *authenticator) verifyToken(token string) (*principal, error) {
	if a.publicKeyErr != nil {
		return nil, a.publicKeyErr
	}

	claims := &jwt.RegisteredClaims{}
	_, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return &principal{method: authMethodJWT, subject: claims.Subject, claims: claims}, nil
}

func (a *authenticator) verifyAPIKey(key string) (*principal, error) {
	if len(a.apiKeys) == 0 {
		return nil, errors.New("no API keys configured")
	}

	// compare against every key so timing does not reveal which one matched
	matched := 0
	for _, valid := range a.apiKeys {
		matched |= subtle.ConstantTimeCompare([]byte(key), valid)
	}
	if matched != 1 {
		return nil, errors.New("invalid API key")
	}

	// the subject is a fingerprint so logs never carry the key
	sum := sha256.Sum256([]byte(key))
	return &principal{method: authMethodAPIKey, subject: "apikey:" + hex.EncodeToString(sum[:4])}, nil
}

// Auth returns a gin middleware that requires a valid JWT (Bearer) or API key (ApiKey)
func Auth(cfg AuthConfig) gin.HandlerFunc {
	a := newAuthenticator(cfg)

	return func(c *gin.Context) {
		p, err := a.authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed: "+err.Error()))
			return
		}

		c.Set(AUTH_TYPE_KEY, p.method)
		if p.subject != "" {
			c.Set(AUTH_SUBJECT_KEY, p.subject)
		}
		if p.claims != nil {
			c.Set(JWT_CLAIMS_KEY, p.claims)
		}

		logger.DebugCtx(c.Request.Context(), "Request authenticated",
			zap.String("method", p.method),
			zap.String("subject", p.subject),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// OptionalAuth enforces Auth only when credentials are configured.
// Without credentials every request passes, which is how demo deployments run.
func OptionalAuth(cfg AuthConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return Auth(cfg)
}

// parseRSAPublicKey parses a PKIX or PKCS1 RSA public key in PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	if block.Type == "RSA PUBLIC KEY" {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
