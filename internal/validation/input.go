package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"form", "json"} {
			if tag := strings.SplitN(f.Tag.Get(key), ",", 2)[0]; tag != "" && tag != "-" {
				return tag
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("content_category", validateContentCategory)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	return v
}

// Struct проверяет структуру по тегам validate и возвращает ошибку ValidationFailed.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "некорректные данные")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), validationMessage(fe)))
	}
	sort.Strings(messages)
	return apperror.New(apperror.ErrCodeValidation, strings.Join(messages, "; "))
}

func validateContentCategory(fl validator.FieldLevel) bool {
	_, ok := models.ValidContentCategories[models.ContentCategory(fl.Field().String())]
	return ok
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "обязательное поле"
	case "max":
		return fmt.Sprintf("не более %s", fe.Param())
	case "min":
		return fmt.Sprintf("не менее %s", fe.Param())
	case "email":
		return "некорректный email"
	case "content_category":
		return "неизвестная тематика"
	case "oneof":
		return fmt.Sprintf("допустимо одно из: %s", fe.Param())
	}
	return "некорректное значение"
}
