// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"stampshop/config"
	"stampshop/internal/domain/constants"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails parsing, signature, expiry or role checks.
var ErrInvalidToken = errors.New("invalid admin token")

// jwtService issues HS256 admin session tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin == nil || cfg.Admin.JWTSecret == "" {
		return nil, errors.New("admin jwt secret must be provided")
	}

	ttl := cfg.Admin.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Admin.JWTSecret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateAdminToken signs a new admin token and returns its expiry.
func (s *jwtService) GenerateAdminToken() (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.AdminClaims{
		Role: constants.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign admin token")
	}

	return token, expiresAt, nil
}

// ValidateToken checks signature, expiry and role.
func (s *jwtService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	claims := &service.AdminClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims.Role != constants.AdminRole {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetTokenDuration returns how long an admin session lasts.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.ttl
}
