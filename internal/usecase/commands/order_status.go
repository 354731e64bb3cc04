package commands

import (
	"context"
	"errors"
	"slices"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/clock"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/shared"
)

var (
	ErrNoStatusIDs         = errs.New("at least one status id is required")
	ErrOrderStatusNotFound = errs.Classify(errs.New("order status not found"), errs.ErrNotFound)
	ErrDuplicateStatus     = errs.Classify(errs.New("an order status with this code or name already exists"), errs.ErrConflict)
)

type CreateOrderStatusRequest struct {
	Code      string
	Name      string
	SortOrder int
	IsDefault bool
}

type UpdateOrderStatusRequest struct {
	Name      *string
	SortOrder *int
	IsDefault *bool
}

type OrderStatusCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateOrderStatusRequest) (*order.Status, error)
	Update(ctx context.Context, actor user.Actor, id int64, req UpdateOrderStatusRequest) (*order.Status, error)
	DeleteMany(ctx context.Context, actor user.Actor, ids []int64) error
}

type orderStatusUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderStatusUseCase(uow shared.UnitOfWork, clk clock.Clock) OrderStatusCommands {
	return &orderStatusUseCaseImpl{uow: uow, clock: clk}
}

func (uc *orderStatusUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateOrderStatusRequest) (*order.Status, error) {
	if err := user.RequireAdmin(actor); err != nil {
		return nil, err
	}
	s, err := order.NewStatus(req.Code, req.Name, req.SortOrder, req.IsDefault, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	return shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*order.Status, error) {
		// at most one default row may exist at any point, so clear first
		if s.IsDefault() {
			if err := tx.OrderStatuses().ClearDefault(ctx, 0); err != nil {
				return nil, err
			}
		}
		id, err := tx.OrderStatuses().Create(ctx, s)
		if err != nil {
			return nil, duplicate(err)
		}
		return tx.Reads().OrderStatusByID(ctx, id)
	})
}

// Update applies a partial change. Marking a row default un-defaults the previous one in the same transaction.
func (uc *orderStatusUseCaseImpl) Update(ctx context.Context, actor user.Actor, id int64, req UpdateOrderStatusRequest) (*order.Status, error) {
	if err := user.RequireAdmin(actor); err != nil {
		return nil, err
	}

	return shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*order.Status, error) {
		locked, err := tx.OrderStatuses().LockByIDs(ctx, []int64{id})
		if err != nil {
			return nil, err
		}
		if len(locked) == 0 {
			return nil, ErrOrderStatusNotFound
		}
		s := locked[0]

		if req.Name != nil {
			if err := s.Rename(*req.Name); err != nil {
				return nil, errs.Validation(err)
			}
		}
		if req.SortOrder != nil {
			s.Reorder(*req.SortOrder)
		}
		becameDefault := false
		if req.IsDefault != nil {
			switch {
			case *req.IsDefault && !s.IsDefault():
				s.MarkDefault(true)
				becameDefault = true
			case !*req.IsDefault && s.IsDefault():
				return nil, order.ErrDefaultRequired
			}
		}

		if becameDefault {
			if err := tx.OrderStatuses().ClearDefault(ctx, s.ID()); err != nil {
				return nil, err
			}
		}
		if err := tx.OrderStatuses().Update(ctx, s); err != nil {
			return nil, duplicate(err)
		}
		return tx.Reads().OrderStatusByID(ctx, id)
	})
}

// DeleteMany is all-or-nothing: one guarded row rejects the whole batch.
func (uc *orderStatusUseCaseImpl) DeleteMany(ctx context.Context, actor user.Actor, ids []int64) error {
	if err := user.RequireAdmin(actor); err != nil {
		return err
	}
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))
	if len(ids) == 0 {
		return errs.Validation(ErrNoStatusIDs)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.OrderStatuses().LockByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(locked) != len(ids) {
			return ErrOrderStatusNotFound
		}
		for _, s := range locked {
			if s.IsDefault() {
				return order.ErrDefaultStatus
			}
		}
		for _, s := range locked {
			inUse, err := tx.Reads().CountOrdersInStatus(ctx, s.Code())
			if err != nil {
				return err
			}
			if err := s.CheckDeletable(inUse); err != nil {
				return err
			}
		}
		return tx.OrderStatuses().DeleteByIDs(ctx, ids)
	})
}

func duplicate(err error) error {
	if errors.Is(err, errs.ErrConflict) {
		return ErrDuplicateStatus
	}
	return err
}
