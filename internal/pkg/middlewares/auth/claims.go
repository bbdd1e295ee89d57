package auth

import (
	"fulfillment/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

// Claims токен identity провайдера: sub id пользователя, role и name.
type Claims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() entities.Actor {
	return entities.Actor{
		ID:   c.Subject,
		Role: entities.Role(c.Role),
		Name: c.Name,
	}
}
