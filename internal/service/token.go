package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ignatzorin/jovial-backend/internal/models"
)

// TokenManager проверяет access токены провайдера идентификации.
type TokenManager struct {
	accessSecret []byte
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(accessSecret string) *TokenManager {
	return &TokenManager{accessSecret: []byte(accessSecret)}
}

// ParseAccess извлекает пользователя и роль из access токена.
// Неизвестная роль даёт аутентифицированного пользователя без прав.
func (m *TokenManager) ParseAccess(token string) (models.Actor, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Actor{}, err
	}
	if !parsed.Valid {
		return models.Actor{}, jwt.ErrTokenInvalidClaims
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.Actor{}, jwt.ErrTokenInvalidClaims
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return models.Actor{}, fmt.Errorf("token: некорректный sub: %w", err)
	}

	actor := models.Actor{UserID: userID}
	switch role, _ := claims["role"].(string); models.Role(role) {
	case models.RoleOwner:
		actor.Role = models.RoleOwner
	case models.RoleCustomer:
		actor.Role = models.RoleCustomer
	}
	return actor, nil
}
