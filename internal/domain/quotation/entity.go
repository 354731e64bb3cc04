package quotation

import (
	"maps"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"

	"github.com/google/uuid"
)

// Quotation is one negotiable line. It is exclusively owned by the customer who created it.
type Quotation struct {
	id         int64
	groupID    *uuid.UUID
	customerID uuid.UUID
	productID  int64
	variantID  *int64
	quantity   Quantity
	notes      Notes
	breakdown  *pricing.Breakdown
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewQuotation(customerID uuid.UUID, productID int64, variantID *int64, quantity int, notes string, groupID *uuid.UUID, now time.Time) (*Quotation, error) {
	qty, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	n, err := NewNotes(notes)
	if err != nil {
		return nil, err
	}
	return &Quotation{
		groupID:    groupID,
		customerID: customerID,
		productID:  productID,
		variantID:  variantID,
		quantity:   qty,
		notes:      n,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructQuotation(id int64, groupID *uuid.UUID, customerID uuid.UUID, productID int64, variantID *int64, quantity int, notes string, breakdown *pricing.Breakdown, status Status, createdAt, updatedAt time.Time) *Quotation {
	return &Quotation{
		id:         id,
		groupID:    groupID,
		customerID: customerID,
		productID:  productID,
		variantID:  variantID,
		quantity:   Quantity{value: quantity},
		notes:      Notes{text: notes},
		breakdown:  breakdown,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (q *Quotation) ID() int64                     { return q.id }
func (q *Quotation) GroupID() *uuid.UUID           { return q.groupID }
func (q *Quotation) CustomerID() uuid.UUID         { return q.customerID }
func (q *Quotation) OwnerID() uuid.UUID            { return q.customerID }
func (q *Quotation) ProductID() int64              { return q.productID }
func (q *Quotation) VariantID() *int64             { return q.variantID }
func (q *Quotation) Quantity() int                 { return q.quantity.Int() }
func (q *Quotation) Notes() string                 { return q.notes.String() }
func (q *Quotation) Breakdown() *pricing.Breakdown { return q.breakdown }
func (q *Quotation) Status() Status                { return q.status }
func (q *Quotation) CreatedAt() time.Time          { return q.createdAt }
func (q *Quotation) UpdatedAt() time.Time          { return q.updatedAt }

// Transition is the result of applying an event: the prior status guards the conditional write.
type Transition struct {
	QuotationID int64
	Event       Event
	From        Status
	To          Status
	Entry       history.Entry
}

// Authorize runs the capability check for event without looking at status.
func (q *Quotation) Authorize(actor user.Actor, event Event) error {
	if _, ok := transitions[event]; !ok {
		return ErrUnknownEvent
	}
	return user.Authorize(actor, CapabilityFor(event), q)
}

// Check authorizes actor and validates that event is legal in the current status.
func (q *Quotation) Check(actor user.Actor, event Event) error {
	if err := q.Authorize(actor, event); err != nil {
		return err
	}
	if _, err := Next(q.status, event); err != nil {
		return q.withID(err)
	}
	return nil
}

func (q *Quotation) Apply(actor user.Actor, event Event, meta history.Meta, now time.Time) (Transition, error) {
	if err := q.Check(actor, event); err != nil {
		return Transition{}, err
	}
	to, _ := Next(q.status, event)
	if event == EventDelete {
		return Transition{QuotationID: q.id, Event: event, From: q.status}, nil
	}

	m := history.Meta{}
	maps.Copy(m, meta)
	m["event"] = string(event)
	actorID := actor.ID
	entry := history.NewEntry(string(to), GuardFor(actor), &actorID, m, now)

	from := q.status
	q.status = to
	q.updatedAt = now
	return Transition{QuotationID: q.id, Event: event, From: from, To: to, Entry: entry}, nil
}

// AmendTerms changes quantity and/or notes. Only the admin may do it, while still pending.
func (q *Quotation) AmendTerms(actor user.Actor, quantity *int, notes *string, now time.Time) error {
	if err := q.Check(actor, EventRequestConfirmation); err != nil {
		return err
	}
	if quantity != nil {
		qty, err := NewQuantity(*quantity)
		if err != nil {
			return err
		}
		q.quantity = qty
	}
	if notes != nil {
		n, err := NewNotes(*notes)
		if err != nil {
			return err
		}
		q.notes = n
	}
	q.updatedAt = now
	return nil
}

// AttachPrice stores the snapshot the customer will confirm and the order will copy.
func (q *Quotation) AttachPrice(b pricing.Breakdown) {
	q.breakdown = &b
}

// CreationEntry is the first ledger row, written together with the quotation.
func (q *Quotation) CreationEntry(actor user.Actor) history.Entry {
	actorID := actor.ID
	return history.NewEntry(string(StatusPending), GuardFor(actor), &actorID, history.Meta{"event": "create"}, q.createdAt)
}

func (q *Quotation) withID(err error) error {
	if ite, ok := err.(*IllegalTransitionError); ok {
		ite.QuotationID = q.id
		return ite
	}
	return err
}

func GuardFor(actor user.Actor) history.ActorGuard {
	if actor.IsAdmin() {
		return history.GuardAdmin
	}
	return history.GuardCustomer
}
