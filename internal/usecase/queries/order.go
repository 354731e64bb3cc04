package queries

import (
	"context"
	"errors"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"
)

var ErrOrderNotFound = errs.Classify(errs.New("order not found"), errs.ErrNotFound)

type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
	History(ctx context.Context, id int64) ([]*HistoryEntryView, error)
	ListStatuses(ctx context.Context) ([]*OrderStatusView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id int64) (*OrderView, error)
	History(ctx context.Context, actor user.Actor, id int64) ([]*HistoryEntryView, error)
	ListStatuses(ctx context.Context) ([]*OrderStatusView, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id int64) (*OrderView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if err := user.Authorize(actor, user.CapViewOwned, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (q *orderQueriesImpl) History(ctx context.Context, actor user.Actor, id int64) ([]*HistoryEntryView, error) {
	if _, err := q.GetByID(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.repo.History(ctx, id)
}

func (q *orderQueriesImpl) ListStatuses(ctx context.Context) ([]*OrderStatusView, error) {
	return q.repo.ListStatuses(ctx)
}
