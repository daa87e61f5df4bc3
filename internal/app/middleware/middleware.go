package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
	RequestIDKey   contextKey = "requestID"
)

const RequestIDHeader = "X-Request-ID"

// TokenVerifier resolves a bearer token to the user it was issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

// RequestID tags every request with an id, reusing the caller's X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(RequestIDKey), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// SecurityMiddleware adds security headers. The API serves JSON only, so
// the CSP forbids everything.
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Writer.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Next()
	}
}

// AuthMiddleware requires a valid bearer token and stores the resolved user
// in the context. Failures stop the request with 401 before any handler runs.
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Not authenticated")
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Bearer token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err))
			unauthorized(c, credentialsDetail(err))
			return
		}

		c.Set(string(UserContextKey), user)
		c.Next()
	}
}

// credentialsDetail names the rejection reason when there is one. A bare
// ErrUnauthenticated carries none.
func credentialsDetail(err error) string {
	const detail = "Could not validate credentials"

	var credErr *models.CredentialError
	switch {
	case errors.As(err, &credErr):
		return detail + ": " + credErr.Error()
	case errors.Is(err, models.ErrUnauthenticated):
		return detail
	default:
		return detail + ": " + err.Error()
	}
}

// UserFromContext extracts the user set by AuthMiddleware.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
