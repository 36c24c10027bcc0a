package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order заявка клиента на производство ролика.
type Order struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	CustomerID  uuid.UUID        `db:"customer_id" json:"customer_id"`
	ServiceType string           `db:"service_type" json:"service_type"`
	Description string           `db:"description" json:"description"`
	Budget      *decimal.Decimal `db:"budget" json:"budget,omitempty"`
	Status      string           `db:"status" json:"status"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// Purchase оплаченная покупка клиента.
type Purchase struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	CustomerID  uuid.UUID       `db:"customer_id" json:"customer_id"`
	OrderID     *uuid.UUID      `db:"order_id" json:"order_id,omitempty"`
	Item        string          `db:"item" json:"item"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Currency    string          `db:"currency" json:"currency"`
	PurchasedAt time.Time       `db:"purchased_at" json:"purchased_at"`
}

// OrderStatusSubmitted статус новой заявки.
const OrderStatusSubmitted = "submitted"
