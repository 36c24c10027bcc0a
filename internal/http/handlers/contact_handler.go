package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/jovial-backend/internal/dto"
	"github.com/ignatzorin/jovial-backend/internal/http/handlers/common"
	"github.com/ignatzorin/jovial-backend/internal/service"
)

// MailtoComposer собирает mailto ссылку из формы.
type MailtoComposer interface {
	ComposeMailto(form service.ContactForm) (string, error)
}

// ContactHandler обрабатывает форму обратной связи.
type ContactHandler struct {
	contact MailtoComposer
}

// NewContactHandler создаёт хэндлер.
func NewContactHandler(contact MailtoComposer) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Compose обрабатывает POST /api/contact.
func (h *ContactHandler) Compose(c *gin.Context) {
	var form service.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		common.FailValidation(c, "некорректный JSON")
		return
	}

	link, err := h.contact.ComposeMailto(form)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MailtoResponse{Mailto: link})
}
