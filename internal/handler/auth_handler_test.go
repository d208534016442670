package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/curriculum-api/internal/models"
	"github.com/noah-isme/curriculum-api/internal/service"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type fakeTokenRepo struct {
	revoked map[string]bool
}

func (r *fakeTokenRepo) IsRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

func (r *fakeTokenRepo) Create(_ context.Context, entry *models.RevokedToken) error {
	r.revoked[entry.Token] = true
	return nil
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("dosen12345"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]*models.User{
		"dosen01": {ID: "dosen01", Name: "Dosen Satu", PasswordHash: string(hash), Role: models.RoleLecturer},
	}}
	tokens := &fakeTokenRepo{revoked: map[string]bool{}}
	svc := service.NewAuthService(users, tokens, nil, nil, service.AuthConfig{Secret: "test-secret"})
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	return r
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"user_id":"dosen01","password":"dosen12345"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func postLogout(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthLogoutTwiceOverHTTP(t *testing.T) {
	r := newAuthTestRouter(t)
	token := loginToken(t, r)

	w := postLogout(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "successfully logged out")

	// Same token again: the revocation must surface as a bad request, not
	// as an authentication failure.
	w = postLogout(r, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "token already revoked")
}

func TestAuthLogoutGarbageToken(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postLogout(r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthLogoutMissingHeader(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postLogout(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
