package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// Context keys set by the JWT middleware.
const (
	ContextUserKey   = "auth_user"
	ContextClaimsKey = "auth_claims"
	ContextTokenKey  = "auth_token"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, *models.JWTClaims, error)
}

// JWT validates the Authorization bearer token and stores the resolved user,
// claims and raw token on the request context.
func JWT(auth authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		user, claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextClaimsKey, claims)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// ExtractBearer pulls the raw token out of an Authorization header. Exposed
// for endpoints that consume the token without resolving it to a user, such
// as logout, which must still answer for already-revoked tokens itself.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "authorization header must be 'Bearer <token>'")
	}
	return strings.TrimSpace(parts[1]), nil
}

// UserFromContext returns the authenticated user set by JWT.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// ClaimsFromContext returns the token claims set by JWT.
func ClaimsFromContext(c *gin.Context) (*models.JWTClaims, bool) {
	value, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}

// TokenFromContext returns the raw bearer token set by JWT.
func TokenFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextTokenKey)
	if !ok {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
