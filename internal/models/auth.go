package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for authenticating a user by business id.
type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued tokens. The refresh token travels to the
// client as an http-only cookie, not in the response body.
type LoginResult struct {
	AccessToken         string `json:"accessToken"`
	RefreshToken        string `json:"-"`
	NeedsPasswordChange bool   `json:"needsPasswordChange"`
}

// RefreshResult returns the re-issued access token.
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
}

// ChangePasswordRequest is the payload for updating the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// JWTClaims represents the token payload for access and refresh tokens.
type JWTClaims struct {
	UserID string   `json:"id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
