package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
	"github.com/noah-isme/curriculum-api/pkg/response"
)

// RequireRoles rejects requests whose authenticated user holds none of the
// allowed roles. Must run after JWT.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "authentication required"))
			c.Abort()
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "insufficient role for this operation"))
			c.Abort()
			return
		}
		c.Next()
	}
}
