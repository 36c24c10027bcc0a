package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uuidParamPrefix = "uuid:"

// UUIDValidator проверяет, что параметр с указанным именем является валидным UUID,
// и кладёт разобранное значение в контекст.
// Использование: owner.PUT("/videos/:id", UUIDValidator("id"), handler.Edit)
func UUIDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		if idStr == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " обязателен",
			})
			return
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " должен быть валидным UUID",
			})
			return
		}

		c.Set(uuidParamPrefix+paramName, id)
		c.Next()
	}
}

// ParamUUID возвращает UUID, проверенный UUIDValidator, или разбирает параметр сам.
func ParamUUID(c *gin.Context, paramName string) (uuid.UUID, bool) {
	if raw, ok := c.Get(uuidParamPrefix + paramName); ok {
		if id, ok := raw.(uuid.UUID); ok {
			return id, true
		}
	}
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
