package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	DeleteCascade(ctx context.Context, id string) error
}

// UpdateUserRequest patches user profile fields; credentials are not
// updatable through this path.
type UpdateUserRequest struct {
	Name *string          `json:"nama"`
	Role *models.UserRole `json:"role"`
}

// UserService manages user accounts. Account creation lives in
// AuthService.Register.
type UserService struct {
	repo   userRepository
	logger *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo userRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, nil
}

// Get returns a user by user_id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// Update patches the user's name and role.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "nama must not be empty")
		}
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "role must be 'kadep' or 'dosen'")
		}
		user.Role = *req.Role
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}
	return user, nil
}

// Delete removes a user account together with their denylist entries.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}
	return nil
}
