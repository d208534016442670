package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/curriculum-api/internal/models"
	appErrors "github.com/noah-isme/curriculum-api/pkg/errors"
)

// loginTokenTTL is the fixed lifetime of tokens issued at login. The
// configurable default expiry does not apply to the login flow.
const loginTokenTTL = 24 * time.Hour

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type authUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type revokedTokenRepository interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	Create(ctx context.Context, entry *models.RevokedToken) error
}

// RegisterRequest captures fields for creating a user account.
type RegisterRequest struct {
	UserID   string          `json:"user_id" validate:"required,max=25"`
	Name     string          `json:"nama" validate:"required"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required"`
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	Secret string
}

// AuthService provides login, token validation, logout and registration.
type AuthService struct {
	users     authUserRepository
	tokens    revokedTokenRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users authUserRepository, tokens revokedTokenRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, tokens: tokens, validator: validate, logger: logger, config: config}
}

// Login authenticates a user and returns a bearer token valid for 24h.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(loginTokenTTL.Seconds()),
	}, nil
}

// Authenticate resolves a bearer token to its user. The denylist is
// consulted before the signature is verified to avoid needless decode work.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, *models.JWTClaims, error) {
	revoked, err := s.tokens.IsRevoked(ctx, token)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check token denylist")
	}
	if revoked {
		return nil, nil, appErrors.Clone(appErrors.ErrUnauthorized, "token has been revoked")
	}

	claims, err := s.decodeToken(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrUnauthorized, "user not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	return user, claims, nil
}

// Logout revokes the presented token. Revocation expiry is pinned to 24h
// from now rather than the token's own expiry.
func (s *AuthService) Logout(ctx context.Context, token string) (*models.LogoutResponse, error) {
	claims, err := s.decodeToken(token)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}

	revoked, err := s.tokens.IsRevoked(ctx, token)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check token denylist")
	}
	if revoked {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "token already revoked")
	}

	now := time.Now().UTC()
	entry := &models.RevokedToken{
		Token:     token,
		RevokedAt: now,
		ExpiresAt: now.Add(loginTokenTTL),
		UserID:    claims.Subject,
	}
	if err := s.tokens.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke token")
	}

	return &models.LogoutResponse{
		Message: "successfully logged out",
		Detail:  "token has been revoked and can no longer be used",
	}, nil
}

// Register creates a user account. The caller must already be authorized
// as a department head.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid register payload")
	}

	if !userIDPattern.MatchString(req.UserID) {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "user_id may only contain letters, digits and underscores")
	}
	if !req.Role.Valid() {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "role must be 'kadep' or 'dosen'")
	}

	exists, err := s.users.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check user id")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user_id already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		ID:           req.UserID,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *AuthService) decodeToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(loginTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
