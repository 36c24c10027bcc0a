package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/jovial-backend/internal/models"
)

// ContextActorKey ключ текущего пользователя в gin.Context.
const ContextActorKey = "actor"

// TokenParser проверяет access токен провайдера идентификации.
type TokenParser interface {
	ParseAccess(token string) (models.Actor, error)
}

// Authenticate разбирает Bearer токен, если он передан. Без токена запрос идёт как аноним,
// с невалидным токеном отклоняется.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.Set(ContextActorKey, models.Actor{})
			c.Next()
			return
		}
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}

		actor, err := tokens.ParseAccess(strings.TrimPrefix(auth, "Bearer "))
		if err != nil || !actor.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "токен невалиден"})
			return
		}

		c.Set(ContextActorKey, actor)
		c.Next()
	}
}

// RequireRole пропускает только пользователя с указанной ролью.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if !actor.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}
		if actor.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "недостаточно прав"})
			return
		}
		c.Next()
	}
}

// CurrentActor возвращает пользователя запроса или анонима.
func CurrentActor(c *gin.Context) models.Actor {
	raw, exists := c.Get(ContextActorKey)
	if !exists {
		return models.Actor{}
	}
	actor, _ := raw.(models.Actor)
	return actor
}
