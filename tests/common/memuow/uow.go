//go:build unit

package memuow

import (
	"context"
	"slices"
	"strings"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UoW struct {
	store *Store
}

func New(store *Store) *UoW {
	return &UoW{store: store}
}

var _ shared.UnitOfWork = (*UoW)(nil)

// Within restores the pre-transaction state when fn fails.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	saved := u.store.st.clone()
	if err := fn(ctx, &tx{s: u.store}); err != nil {
		u.store.st = saved
		return err
	}
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, &reads{s: u.store})
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &lockingReads{inner: &reads{s: u.store}}
}

type tx struct {
	s *Store
}

func (t *tx) Quotations() shared.QuotationRepository       { return &quotationRepo{s: t.s} }
func (t *tx) QuotationHistory() shared.HistoryRepository   { return &historyRepo{s: t.s, quotation: true} }
func (t *tx) Messages() shared.MessageRepository           { return &messageRepo{s: t.s} }
func (t *tx) Orders() shared.OrderRepository               { return &orderRepo{s: t.s} }
func (t *tx) OrderHistory() shared.HistoryRepository       { return &historyRepo{s: t.s} }
func (t *tx) OrderStatuses() shared.OrderStatusRepository  { return &statusRepo{s: t.s} }
func (t *tx) Carts() shared.CartRepository                 { return &cartRepo{s: t.s} }
func (t *tx) Notifications() shared.NotificationRepository { return &notificationRepo{s: t.s} }
func (t *tx) Reads() shared.CommandReads                   { return &reads{s: t.s} }

// ==========================================
// Repositories
// ==========================================

type quotationRepo struct{ s *Store }

func (r *quotationRepo) Create(_ context.Context, q *quotation.Quotation) (int64, error) {
	id := r.s.id()
	r.s.st.quotations[id] = QuotationRow{
		ID:         id,
		GroupID:    q.GroupID(),
		CustomerID: q.CustomerID(),
		ProductID:  q.ProductID(),
		VariantID:  q.VariantID(),
		Quantity:   q.Quantity(),
		Notes:      q.Notes(),
		Breakdown:  q.Breakdown(),
		Status:     q.Status(),
		CreatedAt:  q.CreatedAt(),
		UpdatedAt:  q.UpdatedAt(),
	}
	return id, nil
}

func (r *quotationRepo) LockByID(_ context.Context, id int64) (*quotation.Quotation, error) {
	row, ok := r.s.st.quotations[id]
	if !ok {
		return nil, errNotFound
	}
	return row.domain(), nil
}

func (r *quotationRepo) LockByGroup(_ context.Context, groupID uuid.UUID) ([]*quotation.Quotation, error) {
	var out []*quotation.Quotation
	for _, row := range r.s.st.quotations {
		if row.GroupID != nil && *row.GroupID == groupID {
			out = append(out, row.domain())
		}
	}
	slices.SortFunc(out, func(a, b *quotation.Quotation) int { return int(a.ID() - b.ID()) })
	return out, nil
}

func (r *quotationRepo) UpdateStatus(_ context.Context, tr quotation.Transition, at time.Time) error {
	row, ok := r.s.st.quotations[tr.QuotationID]
	if !ok || row.Status != tr.From {
		return shared.ErrStaleWrite
	}
	row.Status = tr.To
	row.UpdatedAt = at
	r.s.st.quotations[row.ID] = row
	return nil
}

func (r *quotationRepo) UpdateTerms(_ context.Context, q *quotation.Quotation) error {
	row, ok := r.s.st.quotations[q.ID()]
	if !ok {
		return errNotFound
	}
	row.Quantity = q.Quantity()
	row.Notes = q.Notes()
	if b := q.Breakdown(); b != nil {
		copied := *b
		row.Breakdown = &copied
	}
	row.UpdatedAt = q.UpdatedAt()
	r.s.st.quotations[row.ID] = row
	return nil
}

func (r *quotationRepo) Delete(_ context.Context, id int64, from quotation.Status) error {
	row, ok := r.s.st.quotations[id]
	if !ok || row.Status != from {
		return shared.ErrStaleWrite
	}
	delete(r.s.st.quotations, id)
	delete(r.s.st.quotationHistory, id)
	delete(r.s.st.messages, id)
	return nil
}

type historyRepo struct {
	s         *Store
	quotation bool
}

func (r *historyRepo) Append(_ context.Context, parentID int64, entry history.Entry) error {
	if r.quotation {
		if _, ok := r.s.st.quotations[parentID]; !ok {
			return errNotFound
		}
		r.s.st.quotationHistory[parentID] = append(slices.Clone(r.s.st.quotationHistory[parentID]), entry)
		return nil
	}
	if _, ok := r.s.st.orders[parentID]; !ok {
		return errNotFound
	}
	r.s.st.orderHistory[parentID] = append(slices.Clone(r.s.st.orderHistory[parentID]), entry)
	return nil
}

type messageRepo struct{ s *Store }

func (r *messageRepo) Create(_ context.Context, m *quotation.Message) (int64, error) {
	if r.s.FailMessages {
		return 0, ErrInjected
	}
	if _, ok := r.s.st.quotations[m.QuotationID()]; !ok {
		return 0, errNotFound
	}
	id := r.s.id()
	stored := quotation.ReconstructMessage(id, m.QuotationID(), m.SenderID(), m.SenderRole(), m.Body(), m.CreatedAt())
	r.s.st.messages[m.QuotationID()] = append(slices.Clone(r.s.st.messages[m.QuotationID()]), stored)
	return id, nil
}

type orderRepo struct{ s *Store }

// Create enforces one order item per quotation, like the unique index on order_items.
func (r *orderRepo) Create(_ context.Context, o *order.Order) (int64, error) {
	for _, existing := range r.s.st.orders {
		for _, it := range existing.Items {
			if slices.Contains(o.QuotationIDs(), it.QuotationID()) {
				return 0, errDuplicate
			}
		}
	}
	id := r.s.id()
	items := make([]order.Item, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, order.ReconstructItem(r.s.id(), it.QuotationID(), it.ProductID(), it.VariantID(),
			it.Quantity(), it.UnitPrice(), it.LinePrice(), it.Configuration()))
	}
	r.s.st.orders[id] = OrderRow{
		ID:         id,
		Number:     o.Number(),
		CustomerID: o.CustomerID(),
		GroupID:    o.GroupID(),
		Status:     o.Status(),
		Currency:   o.Currency(),
		Total:      o.Total(),
		Items:      items,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
	return id, nil
}

func (r *orderRepo) LockByID(_ context.Context, id int64) (*order.Order, error) {
	row, ok := r.s.st.orders[id]
	if !ok {
		return nil, errNotFound
	}
	return row.domain(), nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, tr order.Transition, at time.Time) error {
	row, ok := r.s.st.orders[tr.OrderID]
	if !ok || row.Status != tr.From {
		return shared.ErrStaleWrite
	}
	row.Status = tr.To
	row.UpdatedAt = at
	r.s.st.orders[row.ID] = row
	return nil
}

type statusRepo struct{ s *Store }

func (r *statusRepo) conflicts(id int64, code order.Code, name string) bool {
	for _, row := range r.s.st.statuses {
		if row.ID == id {
			continue
		}
		if row.Code == code || strings.EqualFold(row.Name, name) {
			return true
		}
	}
	return false
}

func (r *statusRepo) Create(_ context.Context, st *order.Status) (int64, error) {
	if r.conflicts(0, st.Code(), st.Name()) {
		return 0, errDuplicate
	}
	id := r.s.id()
	r.s.st.statuses[id] = StatusRow{
		ID:        id,
		Code:      st.Code(),
		Name:      st.Name(),
		SortOrder: st.SortOrder(),
		IsDefault: st.IsDefault(),
		CreatedAt: st.CreatedAt(),
	}
	return id, nil
}

func (r *statusRepo) Update(_ context.Context, st *order.Status) error {
	row, ok := r.s.st.statuses[st.ID()]
	if !ok {
		return errNotFound
	}
	if r.conflicts(st.ID(), st.Code(), st.Name()) {
		return errDuplicate
	}
	row.Name = st.Name()
	row.SortOrder = st.SortOrder()
	row.IsDefault = st.IsDefault()
	r.s.st.statuses[row.ID] = row
	return nil
}

func (r *statusRepo) ClearDefault(_ context.Context, keepID int64) error {
	for id, row := range r.s.st.statuses {
		if id != keepID && row.IsDefault {
			row.IsDefault = false
			r.s.st.statuses[id] = row
		}
	}
	return nil
}

func (r *statusRepo) LockByIDs(_ context.Context, ids []int64) ([]*order.Status, error) {
	var out []*order.Status
	for _, id := range ids {
		if row, ok := r.s.st.statuses[id]; ok {
			out = append(out, row.domain())
		}
	}
	return out, nil
}

func (r *statusRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.s.st.statuses, id)
	}
	return nil
}

type cartRepo struct{ s *Store }

func (r *cartRepo) DeleteItems(_ context.Context, customerID uuid.UUID, itemIDs []int64) error {
	kept := make([]shared.CartItemSnapshot, 0)
	for _, it := range r.s.st.carts[customerID] {
		if !slices.Contains(itemIDs, it.ID) {
			kept = append(kept, it)
		}
	}
	r.s.st.carts[customerID] = kept
	return nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Enqueue(_ context.Context, jobs ...shared.NotificationJob) error {
	if r.s.FailNotifications {
		return ErrInjected
	}
	next := slices.Clone(r.s.st.jobs)
	for _, j := range jobs {
		next = append(next, Job{Kind: j.Kind, Topic: j.Topic, Payload: j.Payload, RunAt: j.RunAt})
	}
	r.s.st.jobs = next
	return nil
}

// ==========================================
// Reads
// ==========================================

type reads struct{ s *Store }

func (r *reads) CatalogItem(_ context.Context, productID int64, variantID *int64) (*shared.CatalogItemSnapshot, error) {
	var vid int64
	if variantID != nil {
		vid = *variantID
	}
	item, ok := r.s.st.catalog[catalogKey{productID, vid}]
	if !ok {
		return nil, errNotFound
	}
	return &item, nil
}

func (r *reads) MetalRate(_ context.Context, metal, purity, tone, currency string) (decimal.Decimal, error) {
	rate, ok := r.s.st.metalRates[pricing.MetalKey(metal, purity, tone, currency)]
	if !ok {
		return decimal.Zero, errNotFound
	}
	return rate, nil
}

func (r *reads) DiamondRate(_ context.Context, typ, shape, color, clarity string) (decimal.Decimal, error) {
	rate, ok := r.s.st.diamondRates[pricing.DiamondKey(typ, shape, color, clarity)]
	if !ok {
		return decimal.Zero, errNotFound
	}
	return rate, nil
}

func (r *reads) MakingChargePolicy(_ context.Context, productID int64) (pricing.MakingChargePolicy, error) {
	p, ok := r.s.st.policies[productID]
	if !ok {
		return pricing.MakingChargePolicy{}, errNotFound
	}
	return p, nil
}

func (r *reads) DiscountRules(_ context.Context, _ time.Time) ([]pricing.DiscountRule, error) {
	return slices.Clone(r.s.st.discounts), nil
}

func (r *reads) TaxRates(_ context.Context, taxGroupID int64) ([]pricing.TaxRate, error) {
	taxes, ok := r.s.st.taxes[taxGroupID]
	if !ok {
		return nil, errNotFound
	}
	return slices.Clone(taxes), nil
}

func (r *reads) CustomerType(_ context.Context, customerID uuid.UUID) (user.CustomerType, error) {
	ct, ok := r.s.st.customerTypes[customerID]
	if !ok {
		return "", errNotFound
	}
	return ct, nil
}

func (r *reads) CartItems(_ context.Context, customerID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	return slices.Clone(r.s.st.carts[customerID]), nil
}

func (r *reads) QuotationByID(_ context.Context, id int64) (*quotation.Quotation, error) {
	row, ok := r.s.st.quotations[id]
	if !ok {
		return nil, errNotFound
	}
	return row.domain(), nil
}

func (r *reads) OrderByID(_ context.Context, id int64) (*order.Order, error) {
	row, ok := r.s.st.orders[id]
	if !ok {
		return nil, errNotFound
	}
	return row.domain(), nil
}

func (r *reads) DefaultOrderStatus(_ context.Context) (*order.Status, error) {
	for _, row := range r.s.st.statuses {
		if row.IsDefault {
			return row.domain(), nil
		}
	}
	return nil, errNotFound
}

func (r *reads) OrderStatusByCode(_ context.Context, code order.Code) (*order.Status, error) {
	for _, row := range r.s.st.statuses {
		if row.Code == code {
			return row.domain(), nil
		}
	}
	return nil, errNotFound
}

func (r *reads) OrderStatusByID(_ context.Context, id int64) (*order.Status, error) {
	row, ok := r.s.st.statuses[id]
	if !ok {
		return nil, errNotFound
	}
	return row.domain(), nil
}

func (r *reads) CountOrdersInStatus(_ context.Context, code order.Code) (int64, error) {
	var n int64
	for _, row := range r.s.st.orders {
		if row.Status == code {
			n++
		}
	}
	return n, nil
}

// lockingReads serves CommandReads outside a transaction.
type lockingReads struct{ inner *reads }

func (l *lockingReads) lock() func() {
	l.inner.s.mu.Lock()
	return l.inner.s.mu.Unlock
}

func (l *lockingReads) CatalogItem(ctx context.Context, productID int64, variantID *int64) (*shared.CatalogItemSnapshot, error) {
	defer l.lock()()
	return l.inner.CatalogItem(ctx, productID, variantID)
}

func (l *lockingReads) MetalRate(ctx context.Context, metal, purity, tone, currency string) (decimal.Decimal, error) {
	defer l.lock()()
	return l.inner.MetalRate(ctx, metal, purity, tone, currency)
}

func (l *lockingReads) DiamondRate(ctx context.Context, typ, shape, color, clarity string) (decimal.Decimal, error) {
	defer l.lock()()
	return l.inner.DiamondRate(ctx, typ, shape, color, clarity)
}

func (l *lockingReads) MakingChargePolicy(ctx context.Context, productID int64) (pricing.MakingChargePolicy, error) {
	defer l.lock()()
	return l.inner.MakingChargePolicy(ctx, productID)
}

func (l *lockingReads) DiscountRules(ctx context.Context, at time.Time) ([]pricing.DiscountRule, error) {
	defer l.lock()()
	return l.inner.DiscountRules(ctx, at)
}

func (l *lockingReads) TaxRates(ctx context.Context, taxGroupID int64) ([]pricing.TaxRate, error) {
	defer l.lock()()
	return l.inner.TaxRates(ctx, taxGroupID)
}

func (l *lockingReads) CustomerType(ctx context.Context, customerID uuid.UUID) (user.CustomerType, error) {
	defer l.lock()()
	return l.inner.CustomerType(ctx, customerID)
}

func (l *lockingReads) CartItems(ctx context.Context, customerID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	defer l.lock()()
	return l.inner.CartItems(ctx, customerID)
}

func (l *lockingReads) QuotationByID(ctx context.Context, id int64) (*quotation.Quotation, error) {
	defer l.lock()()
	return l.inner.QuotationByID(ctx, id)
}

func (l *lockingReads) OrderByID(ctx context.Context, id int64) (*order.Order, error) {
	defer l.lock()()
	return l.inner.OrderByID(ctx, id)
}

func (l *lockingReads) DefaultOrderStatus(ctx context.Context) (*order.Status, error) {
	defer l.lock()()
	return l.inner.DefaultOrderStatus(ctx)
}

func (l *lockingReads) OrderStatusByCode(ctx context.Context, code order.Code) (*order.Status, error) {
	defer l.lock()()
	return l.inner.OrderStatusByCode(ctx, code)
}

func (l *lockingReads) OrderStatusByID(ctx context.Context, id int64) (*order.Status, error) {
	defer l.lock()()
	return l.inner.OrderStatusByID(ctx, id)
}

func (l *lockingReads) CountOrdersInStatus(ctx context.Context, code order.Code) (int64, error) {
	defer l.lock()()
	return l.inner.CountOrdersInStatus(ctx, code)
}
