package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse returns the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// LogoutResponse confirms a token revocation.
type LogoutResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// JWTClaims represents the JWT payload for access tokens. The subject
// registered claim carries the user_id.
type JWTClaims struct {
	Name string   `json:"nama"`
	Role UserRole `json:"role"`
	jwt.RegisteredClaims
}
