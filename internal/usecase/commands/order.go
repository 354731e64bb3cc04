package commands

import (
	"context"
	"errors"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/clock"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/shared"
)

var ErrOrderNotFound = errs.Classify(errs.New("order not found"), errs.ErrNotFound)

type OrderCommands interface {
	TransitionStatus(ctx context.Context, actor user.Actor, orderID int64, code string, meta history.Meta) (*history.Entry, error)
	Cancel(ctx context.Context, actor user.Actor, orderID int64, reason string) (*history.Entry, error)
}

type orderUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	metrics  shared.Metrics
	clock    clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, notifier shared.Notifier, metrics shared.Metrics, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{uow: uow, notifier: notifier, metrics: metrics, clock: clk}
}

func (uc *orderUseCaseImpl) TransitionStatus(ctx context.Context, actor user.Actor, orderID int64, code string, meta history.Meta) (*history.Entry, error) {
	if err := user.RequireOperator(actor); err != nil {
		return nil, err
	}
	to, err := order.NewCode(code)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return uc.move(ctx, actor, orderID, to, meta)
}

// Cancel is open to the owning customer while unpaid, and to admins wherever the graph allows.
func (uc *orderUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, orderID int64, reason string) (*history.Entry, error) {
	meta := history.Meta{}
	if reason != "" {
		meta["reason"] = reason
	}
	return uc.move(ctx, actor, orderID, order.CodeCancelled, meta)
}

func (uc *orderUseCaseImpl) move(ctx context.Context, actor user.Actor, orderID int64, to order.Code, meta history.Meta) (*history.Entry, error) {
	var (
		o  *order.Order
		tr order.Transition
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		o, err = tx.Orders().LockByID(ctx, orderID)
		if err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		if _, err := tx.Reads().OrderStatusByCode(ctx, to); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return &order.IllegalStatusError{OrderID: orderID, From: o.Status(), To: to, Reason: "unknown status"}
			}
			return err
		}

		tr, err = o.MoveAs(actor, to, meta, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Orders().UpdateStatus(ctx, tr, tr.Entry.CreatedAt); err != nil {
			if errors.Is(err, shared.ErrStaleWrite) {
				return &order.IllegalStatusError{OrderID: orderID, From: tr.From, To: to, Reason: "status changed concurrently"}
			}
			return err
		}
		return tx.OrderHistory().Append(ctx, orderID, tr.Entry)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.OrderStatusChanged(string(tr.To))
	uc.notifier.Notify(ctx, shared.StatusChange{
		Kind:       shared.KindOrderStatusChanged,
		EntityID:   orderID,
		CustomerID: o.CustomerID(),
		From:       string(tr.From),
		To:         string(tr.To),
		At:         tr.Entry.CreatedAt,
	})
	return &tr.Entry, nil
}
