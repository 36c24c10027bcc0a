package common

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/jovial-backend/internal/dto"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
)

// RespondError sends a standardized error response
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// Fail передаёт ошибку в ErrorHandler и прерывает цепочку.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// FailValidation прерывает запрос с ошибкой ValidationFailed.
func FailValidation(c *gin.Context, message string) {
	Fail(c, apperror.New(apperror.ErrCodeValidation, message))
}

// CategoryQuery reads the category filter from the query string, empty means all
func CategoryQuery(c *gin.Context) (models.Category, error) {
	category, err := models.ParseCategory(c.Query("category"))
	if err != nil {
		return "", apperror.Wrap(err, apperror.ErrCodeValidation, "category: неизвестная категория")
	}
	return category, nil
}
