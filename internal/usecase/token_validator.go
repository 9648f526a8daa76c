package usecase

import (
	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator checks session tokens issued by the external auth provider.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	// Sessions without an explicit role belong to ordinary buyers.
	if claims.Role == "" {
		return claims.UserID, user.RoleBuyer, nil
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
