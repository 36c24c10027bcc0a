package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/jovial-backend/internal/http/handlers/common"
)

// ExternalSeeder заполняет базу демонстрационными данными.
type ExternalSeeder interface {
	SeedExternalVideos(ctx context.Context) (int, error)
}

// SeedHandler обрабатывает запросы для генерации демонстрационных данных.
type SeedHandler struct {
	seeder ExternalSeeder
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(seeder ExternalSeeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// SeedResponse представляет ответ на запрос генерации данных.
type SeedResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}

// Seed добавляет демонстрационные внешние ролики.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	inserted, err := h.seeder.SeedExternalVideos(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SeedResponse{Message: "демонстрационные данные добавлены", Inserted: inserted})
}
