package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/jovial-backend/internal/dto"
	"github.com/ignatzorin/jovial-backend/internal/http/handlers/common"
	"github.com/ignatzorin/jovial-backend/internal/http/middleware"
	"github.com/ignatzorin/jovial-backend/internal/service"
)

// PortfolioHandler отдаёт портфолио для трёх поверхностей сайта.
// Каждый запрос монтирует своё представление и сам загружает агрегат.
type PortfolioHandler struct {
	aggregator   service.AggregateLoader
	previewLimit int
}

// NewPortfolioHandler создаёт хэндлер.
func NewPortfolioHandler(aggregator service.AggregateLoader, previewLimit int) *PortfolioHandler {
	return &PortfolioHandler{aggregator: aggregator, previewLimit: previewLimit}
}

// GetPortfolio обрабатывает GET /api/portfolio.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	h.serveView(c, service.NewView(h.aggregator, service.SurfacePortfolioPage, 0), false)
}

// GetHomePreview обрабатывает GET /api/home/preview.
func (h *PortfolioHandler) GetHomePreview(c *gin.Context) {
	h.serveView(c, service.NewView(h.aggregator, service.SurfaceHomePreview, h.previewLimit), false)
}

// GetHomeGallery обрабатывает GET /api/home/gallery. Без expanded=true агрегат не загружается.
func (h *PortfolioHandler) GetHomeGallery(c *gin.Context) {
	expand := c.Query("expanded") == "true"
	h.serveView(c, service.NewView(h.aggregator, service.SurfaceHomeGallery, 0), expand)
}

func (h *PortfolioHandler) serveView(c *gin.Context, view *service.View, expand bool) {
	category, err := common.CategoryQuery(c)
	if err != nil {
		common.Fail(c, err)
		return
	}
	view.Select(category)

	ctx := c.Request.Context()
	err = view.Mount(ctx)
	if err == nil && expand {
		err = view.Expand(ctx)
	}
	if err != nil {
		_ = c.Error(err)
		status, message := middleware.ResolveError(err)
		resp := renderView(view)
		resp.Error = message
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, renderView(view))
}

func renderView(view *service.View) dto.ViewResponse {
	return dto.NewViewResponse(
		string(view.Surface()),
		string(view.State()),
		view.Category(),
		view.Visible(),
		len(view.Items()),
		service.FallbackThumbnailURL,
	)
}
