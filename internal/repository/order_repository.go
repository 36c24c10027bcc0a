package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/repository/common"
)

// OrderRepository хранит заявки и покупки клиентов.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository создаёт экземпляр репозитория.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func insertOrderQuery(o *models.Order) sq.InsertBuilder {
	return common.Psql.Insert("orders").
		Columns("customer_id", "service_type", "description", "budget", "status").
		Values(o.CustomerID, o.ServiceType, o.Description, o.Budget, o.Status).
		Suffix("RETURNING id, created_at")
}

func ordersByCustomerQuery(customerID uuid.UUID) sq.SelectBuilder {
	return common.Psql.
		Select("id", "customer_id", "service_type", "description", "budget", "status", "created_at").
		From("orders").
		Where(sq.Expr("customer_id = ?", customerID)).
		OrderBy("created_at DESC")
}

func purchasesByCustomerQuery(customerID uuid.UUID) sq.SelectBuilder {
	return common.Psql.
		Select("id", "customer_id", "order_id", "item", "amount", "currency", "purchased_at").
		From("purchases").
		Where(sq.Expr("customer_id = ?", customerID)).
		OrderBy("purchased_at DESC")
}

// Create сохраняет новую заявку.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query, args, err := insertOrderQuery(order).ToSql()
	if err != nil {
		return fmt.Errorf("order repository: build insert %w", err)
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt); err != nil {
		return fmt.Errorf("order repository: insert %w", err)
	}
	return nil
}

// ListByCustomer возвращает заявки клиента, новые первыми.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	orders, err := common.Select[models.Order](ctx, r.db, ordersByCustomerQuery(customerID))
	if err != nil {
		return nil, fmt.Errorf("order repository: list %w", err)
	}
	return orders, nil
}

// ListPurchasesByCustomer возвращает историю покупок клиента.
func (r *OrderRepository) ListPurchasesByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error) {
	purchases, err := common.Select[models.Purchase](ctx, r.db, purchasesByCustomerQuery(customerID))
	if err != nil {
		return nil, fmt.Errorf("order repository: list purchases %w", err)
	}
	return purchases, nil
}
