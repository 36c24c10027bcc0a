package service

import (
	"net/url"
	"strings"

	"github.com/ignatzorin/jovial-backend/internal/validation"
)

// ContactForm поля формы обратной связи.
type ContactForm struct {
	Name    string `json:"name" validate:"notblank,max=200"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Service string `json:"service" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"notblank,max=5000"`
}

// ContactService собирает mailto ссылку для почтового клиента посетителя.
// Сервер письмо не отправляет.
type ContactService struct {
	studioEmail string
}

// NewContactService создаёт сервис с адресом студии.
func NewContactService(studioEmail string) *ContactService {
	return &ContactService{studioEmail: studioEmail}
}

// ComposeMailto проверяет форму и возвращает mailto с закодированными темой и телом.
func (s *ContactService) ComposeMailto(form ContactForm) (string, error) {
	if err := validation.Struct(form); err != nil {
		return "", err
	}

	subject := "New inquiry from " + strings.TrimSpace(form.Name)
	if form.Service != "" {
		subject += " (" + strings.TrimSpace(form.Service) + ")"
	}

	var body strings.Builder
	body.WriteString("Name: " + strings.TrimSpace(form.Name) + "\n")
	body.WriteString("Email: " + strings.TrimSpace(form.Email) + "\n")
	if form.Phone != "" {
		body.WriteString("Phone: " + strings.TrimSpace(form.Phone) + "\n")
	}
	if form.Service != "" {
		body.WriteString("Service: " + strings.TrimSpace(form.Service) + "\n")
	}
	body.WriteString("\n" + strings.TrimSpace(form.Message))

	return "mailto:" + s.studioEmail +
		"?subject=" + encodeComponent(subject) +
		"&body=" + encodeComponent(body.String()), nil
}

// encodeComponent кодирует как encodeURIComponent: пробел становится %20, а не +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
