package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/clock"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrEmptyCart         = errs.New("cart is empty")
	ErrNotGroupScoped    = errs.New("event cannot be applied to a quotation group")
	ErrQuotationNotFound = errs.Classify(errs.New("quotation not found"), errs.ErrNotFound)
	ErrGroupNotFound     = errs.Classify(errs.New("quotation group not found"), errs.ErrNotFound)
)

type CreateQuotationRequest struct {
	ProductID int64
	VariantID *int64
	Quantity  int
	Notes     string
}

// TransitionRequest carries the optional payload of a transition.
// Quantity and Notes are honoured for request_confirmation on a single line only.
type TransitionRequest struct {
	Quantity      *int
	Notes         *string
	Comment       string
	Message       string
	DiscountCodes []string
}

type TransitionResult struct {
	Quotation *quotation.Quotation
	OrderID   *int64
}

type GroupTransitionResult struct {
	GroupID    uuid.UUID
	Quotations []*quotation.Quotation
	Skipped    []int64
	OrderID    *int64
}

type QuotationCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateQuotationRequest) (*quotation.Quotation, error)
	CreateFromCart(ctx context.Context, actor user.Actor) ([]*quotation.Quotation, error)
	Transition(ctx context.Context, actor user.Actor, id int64, event quotation.Event, req TransitionRequest) (*TransitionResult, error)
	TransitionGroup(ctx context.Context, actor user.Actor, groupID uuid.UUID, event quotation.Event, req TransitionRequest) (*GroupTransitionResult, error)
	Approve(ctx context.Context, actor user.Actor, id int64) (int64, error)
	Delete(ctx context.Context, actor user.Actor, id int64) error
	PostMessage(ctx context.Context, actor user.Actor, id int64, body string) (*quotation.Message, error)
}

type quotationUseCaseImpl struct {
	uow      shared.UnitOfWork
	pricer   *shared.Pricer
	numbers  order.NumberGenerator
	notifier shared.Notifier
	metrics  shared.Metrics
	clock    clock.Clock
}

func NewQuotationUseCase(
	uow shared.UnitOfWork,
	pricer *shared.Pricer,
	numbers order.NumberGenerator,
	notifier shared.Notifier,
	metrics shared.Metrics,
	clk clock.Clock,
) QuotationCommands {
	return &quotationUseCaseImpl{
		uow:      uow,
		pricer:   pricer,
		numbers:  numbers,
		notifier: notifier,
		metrics:  metrics,
		clock:    clk,
	}
}

func (uc *quotationUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateQuotationRequest) (*quotation.Quotation, error) {
	if !actor.IsCustomer() {
		return nil, errs.ErrForbidden
	}

	return shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*quotation.Quotation, error) {
		id, err := uc.createLine(ctx, tx, actor, req, nil)
		if err != nil {
			return nil, err
		}
		return tx.Reads().QuotationByID(ctx, id)
	})
}

func (uc *quotationUseCaseImpl) CreateFromCart(ctx context.Context, actor user.Actor) ([]*quotation.Quotation, error) {
	if !actor.IsCustomer() {
		return nil, errs.ErrForbidden
	}

	return shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) ([]*quotation.Quotation, error) {
		items, err := tx.Reads().CartItems(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errs.Validation(ErrEmptyCart)
		}

		groupID := uuid.New()
		created := make([]*quotation.Quotation, 0, len(items))
		itemIDs := make([]int64, 0, len(items))
		for _, item := range items {
			id, err := uc.createLine(ctx, tx, actor, CreateQuotationRequest{
				ProductID: item.ProductID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				Notes:     item.Notes,
			}, &groupID)
			if err != nil {
				return nil, err
			}
			q, err := tx.Reads().QuotationByID(ctx, id)
			if err != nil {
				return nil, err
			}
			created = append(created, q)
			itemIDs = append(itemIDs, item.ID)
		}

		if err := tx.Carts().DeleteItems(ctx, actor.ID, itemIDs); err != nil {
			return nil, err
		}
		return created, nil
	})
}

func (uc *quotationUseCaseImpl) createLine(ctx context.Context, tx shared.Tx, actor user.Actor, req CreateQuotationRequest, groupID *uuid.UUID) (int64, error) {
	item, err := tx.Reads().CatalogItem(ctx, req.ProductID, req.VariantID)
	if err != nil {
		return 0, err
	}
	if !item.Active {
		return 0, errs.Validation(quotation.ErrProductInactive)
	}

	q, err := quotation.NewQuotation(actor.ID, req.ProductID, req.VariantID, req.Quantity, req.Notes, groupID, uc.clock.Now())
	if err != nil {
		return 0, errs.Validation(err)
	}
	if err := inventory.Check(item.StockKey(), q.Quantity(), item.Stock); err != nil {
		return 0, err
	}

	id, err := tx.Quotations().Create(ctx, q)
	if err != nil {
		return 0, err
	}
	if err := tx.QuotationHistory().Append(ctx, id, q.CreationEntry(actor)); err != nil {
		return 0, err
	}
	return id, nil
}

// placedOrder is the order an approval created inside the transaction.
type placedOrder struct {
	id         int64
	status     order.Code
	customerID uuid.UUID
	at         time.Time
}

func (p *placedOrder) orderID() *int64 {
	if p == nil {
		return nil
	}
	id := p.id
	return &id
}

// lineChange is what a committed transition leaves behind for post-commit side effects.
type lineChange struct {
	quotation *quotation.Quotation
	tr        quotation.Transition
}

func (uc *quotationUseCaseImpl) Transition(ctx context.Context, actor user.Actor, id int64, event quotation.Event, req TransitionRequest) (*TransitionResult, error) {
	var (
		change lineChange
		placed *placedOrder
	)
	if event == quotation.EventDelete {
		return nil, errs.Validation(quotation.ErrUnknownEvent)
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, err := tx.Quotations().LockByID(ctx, id)
		if err != nil {
			return notFound(err, ErrQuotationNotFound)
		}
		if err := q.Check(actor, event); err != nil {
			return err
		}

		applied, err := uc.applyLine(ctx, tx, actor, q, event, req, true)
		if err != nil {
			return err
		}
		change = applied.change

		if event == quotation.EventApprove {
			placed, err = uc.createOrder(ctx, tx, actor, q.GroupID(), []*quotation.Quotation{q}, applied.items)
			if err != nil {
				return err
			}
		}
		return nil
	})
	uc.metrics.QuotationTransition(string(event), shared.Outcome(err))
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, actor, []lineChange{change}, req.Message, placed)
	return &TransitionResult{Quotation: change.quotation, OrderID: placed.orderID()}, nil
}

func (uc *quotationUseCaseImpl) Approve(ctx context.Context, actor user.Actor, id int64) (int64, error) {
	res, err := uc.Transition(ctx, actor, id, quotation.EventApprove, TransitionRequest{})
	if err != nil {
		return 0, err
	}
	return *res.OrderID, nil
}

func (uc *quotationUseCaseImpl) TransitionGroup(ctx context.Context, actor user.Actor, groupID uuid.UUID, event quotation.Event, req TransitionRequest) (*GroupTransitionResult, error) {
	if !event.IsGroupScoped() {
		return nil, errs.Validation(ErrNotGroupScoped)
	}
	req.Quantity, req.Notes = nil, nil

	result := &GroupTransitionResult{GroupID: groupID}
	var (
		changes []lineChange
		placed  *placedOrder
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.Quotations().LockByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrGroupNotFound
		}
		if err := lines[0].Authorize(actor, event); err != nil {
			return err
		}

		targets := make([]*quotation.Quotation, 0, len(lines))
		skipped := make([]int64, 0)
		for _, q := range lines {
			if q.Status() == quotation.StatusRejected || q.Status() == quotation.StatusCustomerDeclined {
				skipped = append(skipped, q.ID())
				continue
			}
			if err := q.Check(actor, event); err != nil {
				return err
			}
			targets = append(targets, q)
		}
		if len(targets) == 0 {
			_, err := quotation.Next(lines[0].Status(), event)
			return err
		}

		changes = changes[:0]
		items := map[int64]*shared.CatalogItemSnapshot{}
		for _, q := range targets {
			applied, err := uc.applyLine(ctx, tx, actor, q, event, req, false)
			if err != nil {
				return err
			}
			changes = append(changes, applied.change)
			for k, v := range applied.items {
				items[k] = v
			}
		}

		result.Skipped = skipped
		result.Quotations = targets
		if event == quotation.EventApprove {
			placed, err = uc.createOrder(ctx, tx, actor, &groupID, targets, items)
			if err != nil {
				return err
			}
			result.OrderID = placed.orderID()
		}
		return nil
	})
	uc.metrics.QuotationTransition("group_"+string(event), shared.Outcome(err))
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, actor, changes, req.Message, placed)
	return result, nil
}

type appliedLine struct {
	change lineChange
	items  map[int64]*shared.CatalogItemSnapshot
}

// applyLine runs the guards of event on a locked line, then writes status and history.
func (uc *quotationUseCaseImpl) applyLine(
	ctx context.Context,
	tx shared.Tx,
	actor user.Actor,
	q *quotation.Quotation,
	event quotation.Event,
	req TransitionRequest,
	allowAmend bool,
) (appliedLine, error) {
	now := uc.clock.Now()
	out := appliedLine{items: map[int64]*shared.CatalogItemSnapshot{}}

	termsChanged := false
	if allowAmend && event == quotation.EventRequestConfirmation && (req.Quantity != nil || req.Notes != nil) {
		if err := q.AmendTerms(actor, req.Quantity, req.Notes, now); err != nil {
			return out, errs.Validation(err)
		}
		termsChanged = true
	}

	var item *shared.CatalogItemSnapshot
	if quotation.ReStocks(event) {
		var err error
		item, err = tx.Reads().CatalogItem(ctx, q.ProductID(), q.VariantID())
		if err != nil {
			return out, err
		}
		out.items[q.ID()] = item
		if err := inventory.Check(item.StockKey(), q.Quantity(), item.Stock); err != nil {
			return out, err
		}
	}

	if event == quotation.EventRequestConfirmation || (event == quotation.EventApprove && q.Breakdown() == nil) {
		customerType, err := uc.pricer.CustomerTypeOf(ctx, tx.Reads(), q.CustomerID())
		if err != nil {
			return out, err
		}
		b, err := uc.pricer.Price(ctx, tx.Reads(), shared.PriceRequest{
			Item:          item,
			CustomerType:  customerType,
			DiscountCodes: req.DiscountCodes,
		})
		uc.metrics.PriceComputed(shared.Outcome(err))
		if err != nil {
			return out, err
		}
		q.AttachPrice(b)
		termsChanged = true
	}
	if termsChanged {
		if err := tx.Quotations().UpdateTerms(ctx, q); err != nil {
			return out, err
		}
	}

	meta := history.Meta{}
	if req.Comment != "" {
		meta["comment"] = req.Comment
	}
	if b := q.Breakdown(); b != nil && event == quotation.EventRequestConfirmation {
		meta["total"] = b.Total.StringFixed(2)
	}
	tr, err := q.Apply(actor, event, meta, now)
	if err != nil {
		return out, err
	}
	if err := tx.Quotations().UpdateStatus(ctx, tr, now); err != nil {
		if errors.Is(err, shared.ErrStaleWrite) {
			return out, uc.staleTransition(ctx, tx, tr)
		}
		return out, err
	}
	if err := tx.QuotationHistory().Append(ctx, q.ID(), tr.Entry); err != nil {
		return out, err
	}

	out.change = lineChange{quotation: q, tr: tr}
	return out, nil
}

// staleTransition reports the status that won the race for the row.
func (uc *quotationUseCaseImpl) staleTransition(ctx context.Context, tx shared.Tx, tr quotation.Transition) error {
	current := tr.From
	if latest, err := tx.Reads().QuotationByID(ctx, tr.QuotationID); err == nil {
		current = latest.Status()
	}
	return &quotation.IllegalTransitionError{
		QuotationID: tr.QuotationID,
		Event:       tr.Event,
		Current:     current,
		Required:    quotation.RequiredStatuses(tr.Event),
	}
}

func (uc *quotationUseCaseImpl) createOrder(
	ctx context.Context,
	tx shared.Tx,
	actor user.Actor,
	groupID *uuid.UUID,
	approved []*quotation.Quotation,
	items map[int64]*shared.CatalogItemSnapshot,
) (*placedOrder, error) {
	now := uc.clock.Now()

	initial := order.CodePendingPayment
	def, err := tx.Reads().DefaultOrderStatus(ctx)
	switch {
	case err == nil:
		initial = def.Code()
	case !errors.Is(err, errs.ErrNotFound):
		return nil, err
	}

	lines := make([]order.Line, 0, len(approved))
	for _, q := range approved {
		var cfg order.Configuration
		if item, ok := items[q.ID()]; ok {
			if err := copier.Copy(&cfg, item); err != nil {
				return nil, errs.Wrap(err, "failed to copy item configuration")
			}
		}
		lines = append(lines, order.Line{Quotation: q, Configuration: cfg})
	}

	o, err := order.NewOrder(uc.numbers.Next(now), initial, groupID, lines, now)
	if err != nil {
		return nil, err
	}
	id, err := tx.Orders().Create(ctx, o)
	if err != nil {
		return nil, err
	}
	if err := tx.OrderHistory().Append(ctx, id, o.CreationEntry(actor)); err != nil {
		return nil, err
	}
	uc.metrics.OrderCreated(len(lines))
	return &placedOrder{id: id, status: initial, customerID: o.CustomerID(), at: now}, nil
}

// afterCommit runs best-effort side effects. Nothing here can fail the request.
func (uc *quotationUseCaseImpl) afterCommit(ctx context.Context, actor user.Actor, changes []lineChange, message string, placed *placedOrder) {
	orderID := placed.orderID()
	notes := make([]shared.StatusChange, 0, len(changes)+1)
	for _, c := range changes {
		notes = append(notes, shared.StatusChange{
			Kind:       shared.KindQuotationStatusChanged,
			EntityID:   c.tr.QuotationID,
			CustomerID: c.quotation.CustomerID(),
			From:       string(c.tr.From),
			To:         string(c.tr.To),
			Event:      string(c.tr.Event),
			OrderID:    orderID,
			At:         c.tr.Entry.CreatedAt,
		})
	}
	if placed != nil {
		notes = append(notes, shared.StatusChange{
			Kind:       shared.KindOrderCreated,
			EntityID:   placed.id,
			CustomerID: placed.customerID,
			To:         string(placed.status),
			At:         placed.at,
		})
	}
	uc.notifier.Notify(ctx, notes...)

	if message == "" || !actor.IsAdmin() {
		return
	}
	for _, c := range changes {
		if _, err := uc.appendMessage(ctx, actor, c.quotation, message); err != nil {
			slog.Warn("failed to append transition message",
				"quotation_id", c.tr.QuotationID,
				"event", string(c.tr.Event),
				"error", err.Error())
		}
	}
}

func (uc *quotationUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, err := tx.Quotations().LockByID(ctx, id)
		if err != nil {
			return notFound(err, ErrQuotationNotFound)
		}
		tr, err := q.Apply(actor, quotation.EventDelete, nil, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Quotations().Delete(ctx, q.ID(), tr.From); err != nil {
			if errors.Is(err, shared.ErrStaleWrite) {
				return uc.staleTransition(ctx, tx, tr)
			}
			return err
		}
		return nil
	})
	uc.metrics.QuotationTransition(string(quotation.EventDelete), shared.Outcome(err))
	return err
}

func (uc *quotationUseCaseImpl) PostMessage(ctx context.Context, actor user.Actor, id int64, body string) (*quotation.Message, error) {
	q, err := uc.uow.CommandReads().QuotationByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrQuotationNotFound)
	}
	return uc.appendMessage(ctx, actor, q, body)
}

func (uc *quotationUseCaseImpl) appendMessage(ctx context.Context, actor user.Actor, q *quotation.Quotation, body string) (*quotation.Message, error) {
	m, err := quotation.NewMessage(q, actor, body, uc.clock.Now())
	if err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return nil, err
		}
		return nil, errs.Validation(err)
	}
	id, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Messages().Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return quotation.ReconstructMessage(id, m.QuotationID(), m.SenderID(), m.SenderRole(), m.Body(), m.CreatedAt()), nil
}

// notFound swaps a storage not-found for a named one and passes everything else through.
func notFound(err, named error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return named
	}
	return err
}
