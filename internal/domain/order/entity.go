package order

import (
	"maps"
	"slices"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Configuration is the product configuration an item was priced for, frozen at approval.
type Configuration struct {
	Name     string                   `json:"product_name"`
	SKU      string                   `json:"sku,omitempty"`
	Metals   []pricing.MetalComponent `json:"metals"`
	Diamonds []pricing.DiamondSpec    `json:"diamonds"`
	Notes    string                   `json:"notes,omitempty"`
}

func (c Configuration) Clone() Configuration {
	c.Metals = slices.Clone(c.Metals)
	c.Diamonds = slices.Clone(c.Diamonds)
	return c
}

// Line pairs an approved quotation with the configuration it was priced for.
type Line struct {
	Quotation     *quotation.Quotation
	Configuration Configuration
}

type Item struct {
	id            int64
	quotationID   int64
	productID     int64
	variantID     *int64
	quantity      int
	unitPrice     pricing.Breakdown
	linePrice     pricing.Breakdown
	configuration Configuration
}

func ReconstructItem(id, quotationID, productID int64, variantID *int64, quantity int, unit, line pricing.Breakdown, cfg Configuration) Item {
	return Item{
		id:            id,
		quotationID:   quotationID,
		productID:     productID,
		variantID:     variantID,
		quantity:      quantity,
		unitPrice:     unit,
		linePrice:     line,
		configuration: cfg,
	}
}

func (i Item) ID() int64                    { return i.id }
func (i Item) QuotationID() int64           { return i.quotationID }
func (i Item) ProductID() int64             { return i.productID }
func (i Item) VariantID() *int64            { return i.variantID }
func (i Item) Quantity() int                { return i.quantity }
func (i Item) UnitPrice() pricing.Breakdown { return i.unitPrice }
func (i Item) LinePrice() pricing.Breakdown { return i.linePrice }
func (i Item) Configuration() Configuration { return i.configuration }

// Order is created once per approval and never re-priced.
type Order struct {
	id         int64
	number     string
	customerID uuid.UUID
	groupID    *uuid.UUID
	status     Code
	currency   string
	total      decimal.Decimal
	items      []Item
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOrder copies each approved line's price snapshot and configuration into an item.
func NewOrder(number string, initial Code, groupID *uuid.UUID, lines []Line, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	customerID := lines[0].Quotation.CustomerID()
	o := &Order{
		number:     number,
		customerID: customerID,
		groupID:    groupID,
		status:     initial,
		total:      decimal.Zero,
		createdAt:  now,
		updatedAt:  now,
	}
	for _, l := range lines {
		q := l.Quotation
		if q.CustomerID() != customerID {
			return nil, ErrMixedCustomers
		}
		if q.Breakdown() == nil {
			return nil, ErrMissingPriceSnapshot
		}
		unit := *q.Breakdown()
		line, err := unit.LineTotal(q.Quantity())
		if err != nil {
			return nil, err
		}
		if o.currency == "" {
			o.currency = unit.Currency
		}
		cfg := l.Configuration.Clone()
		cfg.Notes = q.Notes()
		o.items = append(o.items, Item{
			quotationID:   q.ID(),
			productID:     q.ProductID(),
			variantID:     q.VariantID(),
			quantity:      q.Quantity(),
			unitPrice:     unit,
			linePrice:     line,
			configuration: cfg,
		})
		o.total = o.total.Add(line.Total)
	}
	return o, nil
}

func ReconstructOrder(id int64, number string, customerID uuid.UUID, groupID *uuid.UUID, status Code, currency string, total decimal.Decimal, items []Item, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:         id,
		number:     number,
		customerID: customerID,
		groupID:    groupID,
		status:     status,
		currency:   currency,
		total:      total,
		items:      items,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (o *Order) ID() int64              { return o.id }
func (o *Order) Number() string         { return o.number }
func (o *Order) CustomerID() uuid.UUID  { return o.customerID }
func (o *Order) OwnerID() uuid.UUID     { return o.customerID }
func (o *Order) GroupID() *uuid.UUID    { return o.groupID }
func (o *Order) Status() Code           { return o.status }
func (o *Order) Currency() string       { return o.currency }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Items() []Item          { return o.items }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }

func (o *Order) QuotationIDs() []int64 {
	ids := make([]int64, len(o.items))
	for i, it := range o.items {
		ids[i] = it.quotationID
	}
	return ids
}

type Transition struct {
	OrderID int64
	From    Code
	To      Code
	Entry   history.Entry
}

// Move changes status on behalf of guard. actorID is nil for system moves.
func (o *Order) Move(guard history.ActorGuard, actorID *uuid.UUID, to Code, meta history.Meta, now time.Time) (Transition, error) {
	if err := CanMove(guard, o.status, to); err != nil {
		if ise, ok := err.(*IllegalStatusError); ok {
			ise.OrderID = o.id
		}
		return Transition{}, err
	}
	m := history.Meta{}
	maps.Copy(m, meta)
	entry := history.NewEntry(string(to), guard, actorID, m, now)

	from := o.status
	o.status = to
	o.updatedAt = now
	return Transition{OrderID: o.id, From: from, To: to, Entry: entry}, nil
}

// MoveAs authorizes actor before moving. Customers need ownership, admins need nothing more.
// System moves carry no actor id.
func (o *Order) MoveAs(actor user.Actor, to Code, meta history.Meta, now time.Time) (Transition, error) {
	if actor.IsSystem() {
		return o.Move(history.GuardSystem, nil, to, meta, now)
	}
	capability := user.CapAdminWrite
	guard := history.GuardAdmin
	if actor.IsCustomer() {
		capability = user.CapCustomerWrite
		guard = history.GuardCustomer
	}
	if err := user.Authorize(actor, capability, o); err != nil {
		return Transition{}, err
	}
	actorID := actor.ID
	return o.Move(guard, &actorID, to, meta, now)
}

// CreationEntry is the first order ledger row, attributed to the approving admin.
func (o *Order) CreationEntry(actor user.Actor) history.Entry {
	actorID := actor.ID
	return history.NewEntry(string(o.status), history.GuardAdmin, &actorID,
		history.Meta{"event": "approve", "quotation_ids": o.QuotationIDs()}, o.createdAt)
}
