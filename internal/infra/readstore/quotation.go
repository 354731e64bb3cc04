package readstore

import (
	"context"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository/converter"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QuotationReadQueries interface {
	GetQuotationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Quotations, error)
	GetQuotationView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetQuotationViewRow, error)
	ListQuotationViewsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationViewsFirstPageParams) ([]sqlc.ListQuotationViewsFirstPageRow, error)
	ListQuotationViewsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotationViewsKeysetParams) ([]sqlc.ListQuotationViewsKeysetRow, error)
	ListQuotationHistory(ctx context.Context, db sqlc.DBTX, quotationID int64) ([]sqlc.QuotationHistory, error)
	ListQuotationMessages(ctx context.Context, db sqlc.DBTX, quotationID int64) ([]sqlc.QuotationMessages, error)
}

type QuotationReadStore struct {
	queries QuotationReadQueries
	db      sqlc.DBTX
}

func NewQuotationReadStore(queries QuotationReadQueries, db sqlc.DBTX) *QuotationReadStore {
	return &QuotationReadStore{
		queries: queries,
		db:      db,
	}
}

// Load returns the aggregate for command-side guards.
func (r *QuotationReadStore) Load(ctx context.Context, id int64) (*quotation.Quotation, error) {
	row, err := r.queries.GetQuotationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load quotation", err)
	}
	return converter.QuotationFromRow(row)
}

func (r *QuotationReadStore) FindByID(ctx context.Context, id int64) (*queries.QuotationView, error) {
	row, err := r.queries.GetQuotationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quotation by ID", err)
	}

	return toQuotationView(quotationViewRow(row))
}

func (r *QuotationReadStore) ListFirstPage(ctx context.Context, customerID *uuid.UUID, status *string, limit int32) ([]*queries.QuotationView, error) {
	params := sqlc.ListQuotationViewsFirstPageParams{
		CustomerID: pgconv.UUIDPtrToPgtype(customerID),
		Status:     pgconv.StringPtrToPgtype(status),
		Limit:      limit,
	}

	rows, err := r.queries.ListQuotationViewsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations first page", err)
	}

	result := make([]*queries.QuotationView, len(rows))
	for i, row := range rows {
		v, err := toQuotationView(quotationViewRow(row))
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (r *QuotationReadStore) ListKeyset(ctx context.Context, customerID *uuid.UUID, status *string, lastCreatedAt time.Time, lastID int64, limit int32) ([]*queries.QuotationView, error) {
	params := sqlc.ListQuotationViewsKeysetParams{
		CustomerID:    pgconv.UUIDPtrToPgtype(customerID),
		Status:        pgconv.StringPtrToPgtype(status),
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		Limit:         limit,
	}

	rows, err := r.queries.ListQuotationViewsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations with keyset", err)
	}

	result := make([]*queries.QuotationView, len(rows))
	for i, row := range rows {
		v, err := toQuotationView(quotationViewRow(row))
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (r *QuotationReadStore) History(ctx context.Context, id int64) ([]*queries.HistoryEntryView, error) {
	rows, err := r.queries.ListQuotationHistory(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotation history", err)
	}

	result := make([]*queries.HistoryEntryView, len(rows))
	for i, row := range rows {
		result[i] = toHistoryEntryView(row.Status, row.ActorGuard, row.ActorID, row.Meta, row.CreatedAt)
	}
	return result, nil
}

func (r *QuotationReadStore) Messages(ctx context.Context, id int64) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListQuotationMessages(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotation messages", err)
	}

	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MessageView{
			ID:          row.ID,
			QuotationID: row.QuotationID,
			SenderID:    row.SenderID,
			SenderRole:  row.SenderRole,
			Body:        row.Body,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

// quotationViewRow is the column set shared by the single-row and list queries.
type quotationViewRow sqlc.GetQuotationViewRow

func toQuotationView(row quotationViewRow) (*queries.QuotationView, error) {
	breakdown, err := converter.BreakdownFromJSON(row.PriceBreakdown)
	if err != nil {
		return nil, err
	}

	return &queries.QuotationView{
		ID:          row.ID,
		GroupID:     pgconv.UUIDPtrFromPgtype(row.QuotationGroupID),
		CustomerID:  row.CustomerID,
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		VariantID:   pgconv.Int64PtrFromPgtype(row.VariantID),
		Quantity:    int(row.Quantity),
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		Status:      row.Status,
		Price:       breakdown,
		OrderID:     pgconv.Int64PtrFromPgtype(row.OrderID),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toHistoryEntryView(status, guard string, actorID pgtype.UUID, meta []byte, createdAt pgtype.Timestamptz) *queries.HistoryEntryView {
	return &queries.HistoryEntryView{
		Status:     status,
		ActorGuard: guard,
		ActorID:    pgconv.UUIDPtrFromPgtype(actorID),
		Meta:       history.ParseMeta(meta),
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
	}
}
