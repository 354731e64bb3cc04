//go:build unit

// Package memuow is an in-memory shared.UnitOfWork. One mutex serializes transactions, so
// row locks and conditional writes behave like a single PostgreSQL connection at a time.
package memuow

import (
	"maps"
	"slices"
	"sync"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errNotFound  = errs.Classify(errs.New("row not found"), errs.ErrNotFound)
	errDuplicate = errs.Classify(errs.New("duplicate key"), errs.ErrConflict)
	ErrInjected  = errs.New("injected failure")
)

type QuotationRow struct {
	ID         int64
	GroupID    *uuid.UUID
	CustomerID uuid.UUID
	ProductID  int64
	VariantID  *int64
	Quantity   int
	Notes      string
	Breakdown  *pricing.Breakdown
	Status     quotation.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r QuotationRow) domain() *quotation.Quotation {
	return quotation.ReconstructQuotation(r.ID, r.GroupID, r.CustomerID, r.ProductID, r.VariantID,
		r.Quantity, r.Notes, r.Breakdown, r.Status, r.CreatedAt, r.UpdatedAt)
}

type OrderRow struct {
	ID         int64
	Number     string
	CustomerID uuid.UUID
	GroupID    *uuid.UUID
	Status     order.Code
	Currency   string
	Total      decimal.Decimal
	Items      []order.Item
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r OrderRow) domain() *order.Order {
	return order.ReconstructOrder(r.ID, r.Number, r.CustomerID, r.GroupID, r.Status, r.Currency, r.Total,
		slices.Clone(r.Items), r.CreatedAt, r.UpdatedAt)
}

type StatusRow struct {
	ID        int64
	Code      order.Code
	Name      string
	SortOrder int
	IsDefault bool
	CreatedAt time.Time
}

func (r StatusRow) domain() *order.Status {
	return order.ReconstructStatus(r.ID, r.Code, r.Name, r.SortOrder, r.IsDefault, r.CreatedAt)
}

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type catalogKey struct {
	productID int64
	variantID int64
}

// Store holds every table the use cases touch.
type Store struct {
	mu sync.Mutex
	st state
	// FailNotifications makes Enqueue fail, for best-effort side-effect tests.
	FailNotifications bool
	// FailMessages makes message inserts fail.
	FailMessages bool
}

type state struct {
	nextID           int64
	catalog          map[catalogKey]shared.CatalogItemSnapshot
	metalRates       map[string]decimal.Decimal
	diamondRates     map[string]decimal.Decimal
	policies         map[int64]pricing.MakingChargePolicy
	discounts        []pricing.DiscountRule
	taxes            map[int64][]pricing.TaxRate
	customerTypes    map[uuid.UUID]user.CustomerType
	carts            map[uuid.UUID][]shared.CartItemSnapshot
	quotations       map[int64]QuotationRow
	quotationHistory map[int64][]history.Entry
	messages         map[int64][]*quotation.Message
	orders           map[int64]OrderRow
	orderHistory     map[int64][]history.Entry
	statuses         map[int64]StatusRow
	jobs             []Job
}

func NewStore() *Store {
	return &Store{st: state{
		catalog:          map[catalogKey]shared.CatalogItemSnapshot{},
		metalRates:       map[string]decimal.Decimal{},
		diamondRates:     map[string]decimal.Decimal{},
		policies:         map[int64]pricing.MakingChargePolicy{},
		taxes:            map[int64][]pricing.TaxRate{},
		customerTypes:    map[uuid.UUID]user.CustomerType{},
		carts:            map[uuid.UUID][]shared.CartItemSnapshot{},
		quotations:       map[int64]QuotationRow{},
		quotationHistory: map[int64][]history.Entry{},
		messages:         map[int64][]*quotation.Message{},
		orders:           map[int64]OrderRow{},
		orderHistory:     map[int64][]history.Entry{},
		statuses:         map[int64]StatusRow{},
	}}
}

// clone copies every table. Rows are values and never mutated in place.
func (s state) clone() state {
	c := s
	c.catalog = maps.Clone(s.catalog)
	c.metalRates = maps.Clone(s.metalRates)
	c.diamondRates = maps.Clone(s.diamondRates)
	c.policies = maps.Clone(s.policies)
	c.discounts = slices.Clone(s.discounts)
	c.taxes = maps.Clone(s.taxes)
	c.customerTypes = maps.Clone(s.customerTypes)
	c.carts = maps.Clone(s.carts)
	c.quotations = maps.Clone(s.quotations)
	c.quotationHistory = maps.Clone(s.quotationHistory)
	c.messages = maps.Clone(s.messages)
	c.orders = maps.Clone(s.orders)
	c.orderHistory = maps.Clone(s.orderHistory)
	c.statuses = maps.Clone(s.statuses)
	c.jobs = slices.Clone(s.jobs)
	return c
}

func (s *Store) id() int64 {
	s.st.nextID++
	return s.st.nextID
}

// ==========================================
// Seeding
// ==========================================

func (s *Store) PutCatalogItem(item shared.CatalogItemSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var vid int64
	if item.VariantID != nil {
		vid = *item.VariantID
	}
	s.st.catalog[catalogKey{item.ProductID, vid}] = item
}

func (s *Store) PutMetalRate(metal, purity, tone, currency string, rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.metalRates[pricing.MetalKey(metal, purity, tone, currency)] = rate
}

func (s *Store) PutDiamondRate(typ, shape, color, clarity string, rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.diamondRates[pricing.DiamondKey(typ, shape, color, clarity)] = rate
}

func (s *Store) PutPolicy(productID int64, p pricing.MakingChargePolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.policies[productID] = p
}

func (s *Store) PutDiscount(r pricing.DiscountRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.discounts = append(s.st.discounts, r)
}

func (s *Store) PutTaxes(groupID int64, taxes ...pricing.TaxRate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.taxes[groupID] = taxes
}

func (s *Store) PutCustomerType(customerID uuid.UUID, ct user.CustomerType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.customerTypes[customerID] = ct
}

func (s *Store) PutCartItem(customerID uuid.UUID, item shared.CartItemSnapshot) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.id()
	s.st.carts[customerID] = append(slices.Clone(s.st.carts[customerID]), item)
	return item.ID
}

func (s *Store) PutQuotation(row QuotationRow) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = s.id()
	s.st.quotations[row.ID] = row
	s.st.quotationHistory[row.ID] = []history.Entry{
		history.NewEntry(string(row.Status), history.GuardCustomer, &row.CustomerID, history.Meta{"event": "seed"}, row.CreatedAt),
	}
	return row.ID
}

func (s *Store) PutOrder(row OrderRow) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = s.id()
	s.st.orders[row.ID] = row
	s.st.orderHistory[row.ID] = []history.Entry{
		history.NewEntry(string(row.Status), history.GuardSystem, nil, nil, row.CreatedAt),
	}
	return row.ID
}

func (s *Store) PutStatus(row StatusRow) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.ID = s.id()
	s.st.statuses[row.ID] = row
	return row.ID
}

// SeedBuiltinStatuses inserts the nine seeded order statuses with pending_payment as default.
func (s *Store) SeedBuiltinStatuses(now time.Time) map[order.Code]int64 {
	codes := []order.Code{
		order.CodePendingPayment, order.CodePending, order.CodeInProduction, order.CodeQualityCheck,
		order.CodeReadyToShip, order.CodeShipped, order.CodeDelivered, order.CodeCancelled, order.CodeRefunded,
	}
	ids := make(map[order.Code]int64, len(codes))
	for i, c := range codes {
		ids[c] = s.PutStatus(StatusRow{
			Code:      c,
			Name:      string(c),
			SortOrder: (i + 1) * 10,
			IsDefault: c == order.CodePendingPayment,
			CreatedAt: now,
		})
	}
	return ids
}

// ==========================================
// Inspection
// ==========================================

func (s *Store) Quotation(id int64) (QuotationRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.quotations[id]
	return r, ok
}

func (s *Store) Quotations() []QuotationRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.st.quotations))
	slices.SortFunc(rows, func(a, b QuotationRow) int { return int(a.ID - b.ID) })
	return rows
}

func (s *Store) QuotationHistory(id int64) []history.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.quotationHistory[id])
}

func (s *Store) Messages(id int64) []*quotation.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.messages[id])
}

func (s *Store) Orders() []OrderRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.st.orders))
	slices.SortFunc(rows, func(a, b OrderRow) int { return int(a.ID - b.ID) })
	return rows
}

func (s *Store) Order(id int64) (OrderRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.orders[id]
	return r, ok
}

func (s *Store) OrderHistory(id int64) []history.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.orderHistory[id])
}

func (s *Store) Statuses() []StatusRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.st.statuses))
	slices.SortFunc(rows, func(a, b StatusRow) int { return int(a.ID - b.ID) })
	return rows
}

func (s *Store) CartItems(customerID uuid.UUID) []shared.CartItemSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.carts[customerID])
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.jobs)
}
