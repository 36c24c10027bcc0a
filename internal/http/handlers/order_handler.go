package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/jovial-backend/internal/http/handlers/common"
	"github.com/ignatzorin/jovial-backend/internal/http/middleware"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/service"
)

// OrderService операции клиентского кабинета.
type OrderService interface {
	SubmitOrder(ctx context.Context, actor models.Actor, in service.SubmitOrderInput) (*models.Order, error)
	ListMyOrders(ctx context.Context, actor models.Actor) ([]models.Order, error)
	ListMyPurchases(ctx context.Context, actor models.Actor) ([]models.Purchase, error)
}

// OrderHandler обслуживает заявки и покупки клиента.
type OrderHandler struct {
	orders OrderService
}

// NewOrderHandler создаёт хэндлер.
func NewOrderHandler(orders OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Submit обрабатывает POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var in service.SubmitOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		common.FailValidation(c, "некорректный JSON")
		return
	}

	order, err := h.orders.SubmitOrder(c.Request.Context(), middleware.CurrentActor(c), in)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListMine обрабатывает GET /api/orders/my.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.orders.ListMyOrders(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		common.Fail(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListPurchases обрабатывает GET /api/purchases/my.
func (h *OrderHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.orders.ListMyPurchases(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		common.Fail(c, err)
		return
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}
