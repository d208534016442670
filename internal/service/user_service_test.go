package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

type mockUserAdminRepo struct {
	users        map[string]*models.User
	cascadeCalls []string
}

func newMockUserAdminRepo(users ...*models.User) *mockUserAdminRepo {
	repo := &mockUserAdminRepo{users: make(map[string]*models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (m *mockUserAdminRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

func (m *mockUserAdminRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserAdminRepo) Update(_ context.Context, user *models.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserAdminRepo) DeleteCascade(_ context.Context, id string) error {
	m.cascadeCalls = append(m.cascadeCalls, id)
	delete(m.users, id)
	return nil
}

func TestUserServiceGet(t *testing.T) {
	repo := newMockUserAdminRepo(&models.User{ID: "dosen01", Name: "Dosen Satu", Role: models.RoleLecturer})
	svc := NewUserService(repo, zap.NewNop())

	user, err := svc.Get(context.Background(), "dosen01")
	require.NoError(t, err)
	assert.Equal(t, "Dosen Satu", user.Name)

	_, err = svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestUserServiceUpdate(t *testing.T) {
	repo := newMockUserAdminRepo(&models.User{ID: "dosen01", Name: "Dosen Satu", Role: models.RoleLecturer})
	svc := NewUserService(repo, zap.NewNop())

	name := "Dosen Pembina"
	role := models.RoleDepartmentHead
	user, err := svc.Update(context.Background(), "dosen01", UpdateUserRequest{Name: &name, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Dosen Pembina", user.Name)
	assert.Equal(t, models.RoleDepartmentHead, user.Role)
	assert.Equal(t, models.RoleDepartmentHead, repo.users["dosen01"].Role)
}

func TestUserServiceUpdateRejections(t *testing.T) {
	repo := newMockUserAdminRepo(&models.User{ID: "dosen01", Name: "Dosen Satu", Role: models.RoleLecturer})
	svc := NewUserService(repo, zap.NewNop())

	badRole := models.UserRole("admin")
	_, err := svc.Update(context.Background(), "dosen01", UpdateUserRequest{Role: &badRole})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)

	empty := ""
	_, err = svc.Update(context.Background(), "dosen01", UpdateUserRequest{Name: &empty})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)

	name := "Baru"
	_, err = svc.Update(context.Background(), "ghost", UpdateUserRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestUserServiceDelete(t *testing.T) {
	repo := newMockUserAdminRepo(&models.User{ID: "dosen01", Name: "Dosen Satu", Role: models.RoleLecturer})
	svc := NewUserService(repo, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "dosen01"))
	assert.Equal(t, []string{"dosen01"}, repo.cascadeCalls)

	err := svc.Delete(context.Background(), "dosen01")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}
