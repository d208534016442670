package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/curriculum-api/internal/models"
)

func newRBACTestRouter(role models.UserRole, allowed ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	setUser := func(c *gin.Context) {
		if role != "" {
			c.Set(ContextUserKey, &models.User{ID: "u-1", Role: role})
		}
		c.Next()
	}
	r.POST("/write", setUser, RequireRoles(allowed...), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireRolesWithoutUser(t *testing.T) {
	r := newRBACTestRouter("", models.RoleDepartmentHead)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesForbidden(t *testing.T) {
	r := newRBACTestRouter(models.RoleLecturer, models.RoleDepartmentHead)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient role")
}

func TestRequireRolesAllowed(t *testing.T) {
	r := newRBACTestRouter(models.RoleDepartmentHead, models.RoleDepartmentHead, models.RoleLecturer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
