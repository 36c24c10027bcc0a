package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
	"github.com/ignatzorin/jovial-backend/internal/validation"
)

// OrderRepository описывает взаимодействие сервиса с хранилищем заявок.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	ListPurchasesByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error)
}

// SubmitOrderInput форма заявки клиента.
type SubmitOrderInput struct {
	ServiceType string           `json:"service_type" validate:"notblank,max=100"`
	Description string           `json:"description" validate:"notblank,max=5000"`
	Budget      *decimal.Decimal `json:"budget"`
}

// OrderService принимает заявки клиентов и отдаёт историю покупок.
type OrderService struct {
	repo OrderRepository
}

// NewOrderService создаёт сервис заявок.
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// SubmitOrder создаёт заявку от имени клиента.
func (s *OrderService) SubmitOrder(ctx context.Context, actor models.Actor, in SubmitOrderInput) (*models.Order, error) {
	if !actor.Authenticated() || actor.Role != models.RoleCustomer {
		return nil, apperror.ErrForbidden
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.Budget != nil && in.Budget.IsNegative() {
		return nil, apperror.New(apperror.ErrCodeValidation, "budget: не может быть отрицательным")
	}

	order := &models.Order{
		CustomerID:  actor.UserID,
		ServiceType: in.ServiceType,
		Description: in.Description,
		Budget:      in.Budget,
		Status:      models.OrderStatusSubmitted,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInsertFailed, "не удалось сохранить заявку")
	}

	logger.WithComponent("orders").WithFields(logrus.Fields{
		"order_id":    order.ID,
		"customer_id": actor.UserID,
	}).Info("order submitted")
	return order, nil
}

// ListMyOrders возвращает заявки клиента.
func (s *OrderService) ListMyOrders(ctx context.Context, actor models.Actor) ([]models.Order, error) {
	if !actor.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}
	orders, err := s.repo.ListByCustomer(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeSourceUnavailable, "заявки временно недоступны")
	}
	return orders, nil
}

// ListMyPurchases возвращает историю покупок клиента.
func (s *OrderService) ListMyPurchases(ctx context.Context, actor models.Actor) ([]models.Purchase, error) {
	if !actor.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}
	purchases, err := s.repo.ListPurchasesByCustomer(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeSourceUnavailable, "покупки временно недоступны")
	}
	return purchases, nil
}
