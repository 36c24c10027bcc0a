package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Клиент получает сообщение AppError, внутренние детали остаются в логе.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		statusCode, message := ResolveError(err)

		entry := logger.Log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"code":   apperror.CodeOf(err),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		if statusCode >= http.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request error")
		}

		// Ответ мог уже записать сам хэндлер
		if c.Writer.Written() {
			return
		}
		c.JSON(statusCode, gin.H{"error": message})
	}
}

// ResolveError сопоставляет ошибку HTTP статусу и сообщению для клиента.
func ResolveError(err error) (int, string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Message
	}
	return http.StatusInternalServerError, "внутренняя ошибка сервера"
}
