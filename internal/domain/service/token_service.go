package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates staff access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a staff account.
	GenerateAccessToken(staffID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
