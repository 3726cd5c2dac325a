package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims defines the custom claims for the admin session token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates admin session tokens.
type TokenService interface {
	// GenerateAdminToken signs a new admin token and returns its expiry.
	GenerateAdminToken() (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry and role.
	ValidateToken(tokenString string) (*AdminClaims, error)

	// GetTokenDuration returns how long an admin session lasts.
	GetTokenDuration() time.Duration
}

// OTPVerifier checks one-time codes from the admin authenticator app.
type OTPVerifier interface {
	Verify(code string) bool
}
