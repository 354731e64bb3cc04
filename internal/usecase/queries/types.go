package queries

import (
	"time"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationView represents read-optimized quotation data
type QuotationView struct {
	ID          int64              `json:"id"`
	GroupID     *uuid.UUID         `json:"quotation_group_id,omitempty"`
	CustomerID  uuid.UUID          `json:"customer_id"`
	ProductID   int64              `json:"product_id"`
	ProductName string             `json:"product_name"`
	VariantID   *int64             `json:"variant_id,omitempty"`
	Quantity    int                `json:"quantity"`
	Notes       *string            `json:"notes,omitempty"`
	Status      string             `json:"status"`
	Price       *pricing.Breakdown `json:"price_breakdown,omitempty"`
	OrderID     *int64             `json:"order_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (v *QuotationView) OwnerID() uuid.UUID { return v.CustomerID }

type HistoryEntryView struct {
	Status     string         `json:"status"`
	ActorGuard string         `json:"actor_guard"`
	ActorID    *uuid.UUID     `json:"actor_id,omitempty"`
	Meta       map[string]any `json:"meta"`
	CreatedAt  time.Time      `json:"created_at"`
}

type MessageView struct {
	ID          int64     `json:"id"`
	QuotationID int64     `json:"quotation_id"`
	SenderID    uuid.UUID `json:"sender_id"`
	SenderRole  string    `json:"sender_role"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderView struct {
	ID         int64           `json:"id"`
	Number     string          `json:"number"`
	CustomerID uuid.UUID       `json:"customer_id"`
	GroupID    *uuid.UUID      `json:"quotation_group_id,omitempty"`
	Status     string          `json:"status"`
	Currency   string          `json:"currency"`
	Total      decimal.Decimal `json:"total"`
	Items      []OrderItemView `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (v *OrderView) OwnerID() uuid.UUID { return v.CustomerID }

type OrderItemView struct {
	ID            int64               `json:"id"`
	QuotationID   int64               `json:"quotation_id"`
	ProductID     int64               `json:"product_id"`
	VariantID     *int64              `json:"variant_id,omitempty"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     pricing.Breakdown   `json:"unit_price"`
	LinePrice     pricing.Breakdown   `json:"line_price"`
	Configuration order.Configuration `json:"configuration"`
}

type OrderStatusView struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type PriceQuote struct {
	ProductID    int64              `json:"product_id"`
	VariantID    *int64             `json:"variant_id,omitempty"`
	Quantity     int                `json:"quantity"`
	CustomerType string             `json:"customer_type"`
	Unit         pricing.Breakdown  `json:"unit"`
	Line         *pricing.Breakdown `json:"line,omitempty"`
}
