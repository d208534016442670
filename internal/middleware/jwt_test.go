package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

type stubAuthenticator struct {
	user   *models.User
	claims *models.JWTClaims
	err    error

	seenToken string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*models.User, *models.JWTClaims, error) {
	s.seenToken = token
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.user, s.claims, nil
}

func newJWTTestRouter(auth *stubAuthenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(auth), func(c *gin.Context) {
		user, _ := UserFromContext(c)
		token, _ := TokenFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "token": token})
	})
	return r
}

func TestJWTMissingHeader(t *testing.T) {
	r := newJWTTestRouter(&stubAuthenticator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMalformedHeader(t *testing.T) {
	r := newJWTTestRouter(&stubAuthenticator{})

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTRejectedToken(t *testing.T) {
	auth := &stubAuthenticator{err: appErrors.Clone(appErrors.ErrUnauthorized, "token revoked")}
	r := newJWTTestRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer revoked-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "revoked-token", auth.seenToken)
}

func TestJWTSetsContext(t *testing.T) {
	auth := &stubAuthenticator{
		user:   &models.User{ID: "kadep01", Name: "Kepala Departemen", Role: models.RoleDepartmentHead},
		claims: &models.JWTClaims{Name: "Kepala Departemen", Role: models.RoleDepartmentHead},
	}
	r := newJWTTestRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "kadep01", body["user_id"])
	assert.Equal(t, "live-token", body["token"])
}
