package queries

import (
	"context"
	"errors"
	"time"

	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound = errs.Classify(errs.New("quotation not found"), errs.ErrNotFound)
	ErrInvalidStatus     = errs.Validation(errs.New("unknown quotation status"))
)

type QuotationFilters struct {
	Status *string
}

type QuotationReadStore interface {
	FindByID(ctx context.Context, id int64) (*QuotationView, error)
	// customerID nil lists every customer's quotations.
	ListFirstPage(ctx context.Context, customerID *uuid.UUID, status *string, limit int32) ([]*QuotationView, error)
	ListKeyset(ctx context.Context, customerID *uuid.UUID, status *string, lastCreatedAt time.Time, lastID int64, limit int32) ([]*QuotationView, error)
	History(ctx context.Context, id int64) ([]*HistoryEntryView, error)
	Messages(ctx context.Context, id int64) ([]*MessageView, error)
}

type QuotationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id int64) (*QuotationView, error)
	List(ctx context.Context, actor user.Actor, filters QuotationFilters, cursor *Cursor, limit int) ([]*QuotationView, *Cursor, error)
	History(ctx context.Context, actor user.Actor, id int64) ([]*HistoryEntryView, error)
	Messages(ctx context.Context, actor user.Actor, id int64) ([]*MessageView, error)
}

type quotationQueriesImpl struct {
	repo QuotationReadStore
}

func NewQuotationQueries(repo QuotationReadStore) QuotationQueries {
	return &quotationQueriesImpl{repo: repo}
}

// GetByID answers Forbidden, not NotFound, for a quotation owned by someone else.
func (q *quotationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id int64) (*QuotationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, err
	}
	if err := user.Authorize(actor, user.CapViewOwned, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (q *quotationQueriesImpl) List(ctx context.Context, actor user.Actor, filters QuotationFilters, cursor *Cursor, limit int) ([]*QuotationView, *Cursor, error) {
	if filters.Status != nil && !quotation.Status(*filters.Status).IsValid() {
		return nil, nil, ErrInvalidStatus
	}
	var customerID *uuid.UUID
	switch {
	case actor.IsAdmin():
	case actor.IsCustomer():
		customerID = &actor.ID
	default:
		return nil, nil, errs.ErrForbidden
	}

	limit = ValidateLimit(limit)
	status := ptr.Deref(filters.Status)
	var rows []*QuotationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, customerID, filters.Status, int32(limit+1))
	} else {
		after, derr := DecodeKeyset(cursor.After, status)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.ListKeyset(ctx, customerID, filters.Status, after.CreatedAt, after.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: Keyset{CreatedAt: last.CreatedAt, ID: last.ID, Status: status}.Encode()}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *quotationQueriesImpl) History(ctx context.Context, actor user.Actor, id int64) ([]*HistoryEntryView, error) {
	if _, err := q.GetByID(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.repo.History(ctx, id)
}

func (q *quotationQueriesImpl) Messages(ctx context.Context, actor user.Actor, id int64) ([]*MessageView, error) {
	if _, err := q.GetByID(ctx, actor, id); err != nil {
		return nil, err
	}
	return q.repo.Messages(ctx, id)
}
