package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

type mockTokenRepo struct {
	revoked map[string]bool
	created int
}

func (m *mockTokenRepo) IsRevoked(_ context.Context, token string) (bool, error) {
	return m.revoked[token], nil
}

func (m *mockTokenRepo) Create(_ context.Context, entry *models.RevokedToken) error {
	if m.revoked == nil {
		m.revoked = make(map[string]bool)
	}
	m.revoked[entry.Token] = true
	m.created++
	return nil
}

func seedUser(t *testing.T, id, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: id, Name: "Test User", PasswordHash: string(hash), Role: role}
}

func newAuthService(users *mockUserRepo, tokens *mockTokenRepo) *AuthService {
	return NewAuthService(users, tokens, nil, zap.NewNop(), AuthConfig{Secret: "test-secret"})
}

func TestAuthServiceLoginAndAuthenticate(t *testing.T) {
	users := newMockUserRepo(seedUser(t, "kadep01", "rahasia123", models.RoleDepartmentHead))
	svc := newAuthService(users, &mockTokenRepo{})

	res, err := svc.Login(context.Background(), models.LoginRequest{UserID: "kadep01", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, int64(24*60*60), res.ExpiresIn)
	require.NotEmpty(t, res.AccessToken)

	user, claims, err := svc.Authenticate(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "kadep01", user.ID)
	assert.Equal(t, "kadep01", claims.Subject)
	assert.Equal(t, models.RoleDepartmentHead, claims.Role)
}

func TestAuthServiceLoginBadCredentials(t *testing.T) {
	users := newMockUserRepo(seedUser(t, "dosen01", "rahasia123", models.RoleLecturer))
	svc := newAuthService(users, &mockTokenRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{UserID: "dosen01", Password: "salah"})
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)

	_, err = svc.Login(context.Background(), models.LoginRequest{UserID: "ghost", Password: "rahasia123"})
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestAuthServiceLogoutTwice(t *testing.T) {
	users := newMockUserRepo(seedUser(t, "dosen01", "rahasia123", models.RoleLecturer))
	tokens := &mockTokenRepo{}
	svc := newAuthService(users, tokens)

	res, err := svc.Login(context.Background(), models.LoginRequest{UserID: "dosen01", Password: "rahasia123"})
	require.NoError(t, err)

	out, err := svc.Logout(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "successfully logged out", out.Message)
	assert.Equal(t, 1, tokens.created)

	_, err = svc.Logout(context.Background(), res.AccessToken)
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
	assert.Equal(t, 1, tokens.created)
}

func TestAuthServiceAuthenticateRevokedToken(t *testing.T) {
	users := newMockUserRepo(seedUser(t, "dosen01", "rahasia123", models.RoleLecturer))
	tokens := &mockTokenRepo{}
	svc := newAuthService(users, tokens)

	res, err := svc.Login(context.Background(), models.LoginRequest{UserID: "dosen01", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = svc.Logout(context.Background(), res.AccessToken)
	require.NoError(t, err)

	_, _, err = svc.Authenticate(context.Background(), res.AccessToken)
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestAuthServiceLogoutGarbageToken(t *testing.T) {
	svc := newAuthService(newMockUserRepo(), &mockTokenRepo{})

	_, err := svc.Logout(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestAuthServiceRegister(t *testing.T) {
	users := newMockUserRepo(seedUser(t, "kadep01", "rahasia123", models.RoleDepartmentHead))
	svc := newAuthService(users, &mockTokenRepo{})

	user, err := svc.Register(context.Background(), RegisterRequest{
		UserID:   "dosen02",
		Name:     "Dosen Baru",
		Password: "rahasia123",
		Role:     models.RoleLecturer,
	})
	require.NoError(t, err)
	assert.Equal(t, "dosen02", user.ID)
	assert.NotEqual(t, "rahasia123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia123")))
}

func TestAuthServiceRegisterRejections(t *testing.T) {
	users := newMockUserRepo(seedUser(t, "kadep01", "rahasia123", models.RoleDepartmentHead))
	svc := newAuthService(users, &mockTokenRepo{})

	cases := []struct {
		name   string
		req    RegisterRequest
		status int
	}{
		{"duplicate user id", RegisterRequest{UserID: "kadep01", Name: "X", Password: "rahasia123", Role: models.RoleLecturer}, 400},
		{"short password", RegisterRequest{UserID: "dosen03", Name: "X", Password: "short", Role: models.RoleLecturer}, 400},
		{"bad role", RegisterRequest{UserID: "dosen03", Name: "X", Password: "rahasia123", Role: "admin"}, 400},
		{"bad user id characters", RegisterRequest{UserID: "dosen 03!", Name: "X", Password: "rahasia123", Role: models.RoleLecturer}, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.status, appErrors.FromError(err).Status)
		})
	}
}
