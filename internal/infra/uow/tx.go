package uow

import (
	"context"
	"time"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/infra/readstore"
	"gin-jewelry-b2b/internal/infra/repository"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	quotationRepo    shared.QuotationRepository
	quotationHistory shared.HistoryRepository
	messageRepo      shared.MessageRepository
	orderRepo        shared.OrderRepository
	orderHistory     shared.HistoryRepository
	orderStatusRepo  shared.OrderStatusRepository
	cartRepo         shared.CartRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Quotations() shared.QuotationRepository {
	if t.quotationRepo == nil {
		t.quotationRepo = repository.NewQuotationRepository(t.uow.q, t.dbtx)
	}
	return t.quotationRepo
}

func (t *pgTx) QuotationHistory() shared.HistoryRepository {
	if t.quotationHistory == nil {
		t.quotationHistory = repository.NewQuotationHistoryRepository(t.uow.q, t.dbtx)
	}
	return t.quotationHistory
}

func (t *pgTx) Messages() shared.MessageRepository {
	if t.messageRepo == nil {
		t.messageRepo = repository.NewMessageRepository(t.uow.q, t.dbtx)
	}
	return t.messageRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) OrderHistory() shared.HistoryRepository {
	if t.orderHistory == nil {
		t.orderHistory = repository.NewOrderHistoryRepository(t.uow.q, t.dbtx)
	}
	return t.orderHistory
}

func (t *pgTx) OrderStatuses() shared.OrderStatusRepository {
	if t.orderStatusRepo == nil {
		t.orderStatusRepo = repository.NewOrderStatusRepository(t.uow.q, t.dbtx)
	}
	return t.orderStatusRepo
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q, t.dbtx)
	}
	return t.cartRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads serves guards and pricing from whatever dbtx it is bound to: the pool,
// a read-only transaction or the write transaction itself.
type commandReads struct {
	catalog    *readstore.CatalogReadStore
	pricing    *readstore.PricingReadStore
	quotations *readstore.QuotationReadStore
	orders     *readstore.OrderReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{
		catalog:    readstore.NewCatalogReadStore(q, dbtx),
		pricing:    readstore.NewPricingReadStore(q, dbtx),
		quotations: readstore.NewQuotationReadStore(q, dbtx),
		orders:     readstore.NewOrderReadStore(q, dbtx),
	}
}

func (r *commandReads) CatalogItem(ctx context.Context, productID int64, variantID *int64) (*shared.CatalogItemSnapshot, error) {
	return r.catalog.Item(ctx, productID, variantID)
}

func (r *commandReads) MetalRate(ctx context.Context, metal, purity, tone, currency string) (decimal.Decimal, error) {
	return r.pricing.MetalRate(ctx, metal, purity, tone, currency)
}

func (r *commandReads) DiamondRate(ctx context.Context, typ, shape, color, clarity string) (decimal.Decimal, error) {
	return r.pricing.DiamondRate(ctx, typ, shape, color, clarity)
}

func (r *commandReads) MakingChargePolicy(ctx context.Context, productID int64) (pricing.MakingChargePolicy, error) {
	return r.pricing.MakingChargePolicy(ctx, productID)
}

func (r *commandReads) DiscountRules(ctx context.Context, at time.Time) ([]pricing.DiscountRule, error) {
	return r.pricing.DiscountRules(ctx, at)
}

func (r *commandReads) TaxRates(ctx context.Context, taxGroupID int64) ([]pricing.TaxRate, error) {
	return r.pricing.TaxRates(ctx, taxGroupID)
}

func (r *commandReads) CustomerType(ctx context.Context, customerID uuid.UUID) (user.CustomerType, error) {
	return r.catalog.CustomerType(ctx, customerID)
}

func (r *commandReads) CartItems(ctx context.Context, customerID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	return r.catalog.CartItems(ctx, customerID)
}

func (r *commandReads) QuotationByID(ctx context.Context, id int64) (*quotation.Quotation, error) {
	return r.quotations.Load(ctx, id)
}

func (r *commandReads) OrderByID(ctx context.Context, id int64) (*order.Order, error) {
	return r.orders.Load(ctx, id)
}

func (r *commandReads) DefaultOrderStatus(ctx context.Context) (*order.Status, error) {
	return r.orders.DefaultStatus(ctx)
}

func (r *commandReads) OrderStatusByCode(ctx context.Context, code order.Code) (*order.Status, error) {
	return r.orders.StatusByCode(ctx, code)
}

func (r *commandReads) OrderStatusByID(ctx context.Context, id int64) (*order.Status, error) {
	return r.orders.StatusByID(ctx, id)
}

func (r *commandReads) CountOrdersInStatus(ctx context.Context, code order.Code) (int64, error) {
	return r.orders.CountInStatus(ctx, code)
}
