package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService validates the access tokens issued by the campus identity
// provider. This service neither registers users nor issues refresh tokens;
// GenerateAccessToken exists for staff tooling and tests.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user with roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
