package usecase

import (
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller identity for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// ValidateToken only admits the two roles the pricing engine knows; any
// other role claim is treated as a forged or foreign token.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.Parse(tokenString)
	if err != nil {
		return user.Actor{}, err
	}
	id, err := claims.ActorID()
	if err != nil {
		return user.Actor{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, jwt.ErrInvalidToken
	}
	return user.NewActor(id, role), nil
}
