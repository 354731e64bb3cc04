package shared

import (
	"context"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrStaleWrite is returned by conditional writes whose expected prior status no longer holds.
var ErrStaleWrite = errs.New("row changed since it was read")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Quotations() QuotationRepository
	QuotationHistory() HistoryRepository
	Messages() MessageRepository
	Orders() OrderRepository
	OrderHistory() HistoryRepository
	OrderStatuses() OrderStatusRepository
	Carts() CartRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are the lookups commands need for guards and pricing.
// Missing rows surface as errors matching errs.ErrNotFound.
type CommandReads interface {
	CatalogItem(ctx context.Context, productID int64, variantID *int64) (*CatalogItemSnapshot, error)
	MetalRate(ctx context.Context, metal, purity, tone, currency string) (decimal.Decimal, error)
	DiamondRate(ctx context.Context, typ, shape, color, clarity string) (decimal.Decimal, error)
	MakingChargePolicy(ctx context.Context, productID int64) (pricing.MakingChargePolicy, error)
	DiscountRules(ctx context.Context, at time.Time) ([]pricing.DiscountRule, error)
	TaxRates(ctx context.Context, taxGroupID int64) ([]pricing.TaxRate, error)
	CustomerType(ctx context.Context, customerID uuid.UUID) (user.CustomerType, error)
	CartItems(ctx context.Context, customerID uuid.UUID) ([]CartItemSnapshot, error)
	QuotationByID(ctx context.Context, id int64) (*quotation.Quotation, error)
	OrderByID(ctx context.Context, id int64) (*order.Order, error)
	DefaultOrderStatus(ctx context.Context) (*order.Status, error)
	OrderStatusByCode(ctx context.Context, code order.Code) (*order.Status, error)
	OrderStatusByID(ctx context.Context, id int64) (*order.Status, error)
	CountOrdersInStatus(ctx context.Context, code order.Code) (int64, error)
}

type QuotationRepository interface {
	Create(ctx context.Context, q *quotation.Quotation) (int64, error)
	// LockByID reads the row FOR UPDATE.
	LockByID(ctx context.Context, id int64) (*quotation.Quotation, error)
	// LockByGroup reads every line of the group FOR UPDATE, ordered by id.
	LockByGroup(ctx context.Context, groupID uuid.UUID) ([]*quotation.Quotation, error)
	// UpdateStatus writes tr.To only while the row is still in tr.From, else ErrStaleWrite.
	UpdateStatus(ctx context.Context, tr quotation.Transition, at time.Time) error
	UpdateTerms(ctx context.Context, q *quotation.Quotation) error
	// Delete removes the row while it is still in from, cascading history and messages.
	Delete(ctx context.Context, id int64, from quotation.Status) error
}

type HistoryRepository interface {
	Append(ctx context.Context, parentID int64, entry history.Entry) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *quotation.Message) (int64, error)
}

type OrderRepository interface {
	// Create inserts the order and its items. A quotation can back at most one item.
	Create(ctx context.Context, o *order.Order) (int64, error)
	LockByID(ctx context.Context, id int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, tr order.Transition, at time.Time) error
}

type OrderStatusRepository interface {
	Create(ctx context.Context, s *order.Status) (int64, error)
	Update(ctx context.Context, s *order.Status) error
	// ClearDefault un-defaults every row except keepID.
	ClearDefault(ctx context.Context, keepID int64) error
	LockByIDs(ctx context.Context, ids []int64) ([]*order.Status, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type CartRepository interface {
	DeleteItems(ctx context.Context, customerID uuid.UUID, itemIDs []int64) error
}

// NotificationJob is one queued row for the delivery worker.
type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, jobs ...NotificationJob) error
}
