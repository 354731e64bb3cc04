package repository

import (
	"context"
	"time"

	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository/converter"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QuotationWriteQueries interface {
	CreateQuotation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQuotationParams) (int64, error)
	LockQuotationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Quotations, error)
	LockQuotationsByGroup(ctx context.Context, db sqlc.DBTX, quotationGroupID pgtype.UUID) ([]sqlc.Quotations, error)
	UpdateQuotationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuotationStatusParams) (int64, error)
	UpdateQuotationTerms(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuotationTermsParams) (int64, error)
	DeleteQuotation(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteQuotationParams) (int64, error)
}

type QuotationRepository struct {
	queries QuotationWriteQueries
	db      sqlc.DBTX
}

func NewQuotationRepository(queries QuotationWriteQueries, db sqlc.DBTX) *QuotationRepository {
	return &QuotationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *QuotationRepository) Create(ctx context.Context, q *quotation.Quotation) (int64, error) {
	params, err := converter.QuotationToInfra(q)
	if err != nil {
		return 0, err
	}

	id, err := r.queries.CreateQuotation(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create quotation", err)
	}

	return id, nil
}

func (r *QuotationRepository) LockByID(ctx context.Context, id int64) (*quotation.Quotation, error) {
	row, err := r.queries.LockQuotationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock quotation", err)
	}

	return converter.QuotationFromRow(row)
}

func (r *QuotationRepository) LockByGroup(ctx context.Context, groupID uuid.UUID) ([]*quotation.Quotation, error) {
	rows, err := r.queries.LockQuotationsByGroup(ctx, r.db, pgconv.UUIDToPgtype(groupID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock quotation group", err)
	}

	result := make([]*quotation.Quotation, 0, len(rows))
	for _, row := range rows {
		q, err := converter.QuotationFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, q)
	}

	return result, nil
}

func (r *QuotationRepository) UpdateStatus(ctx context.Context, tr quotation.Transition, at time.Time) error {
	params := sqlc.UpdateQuotationStatusParams{
		ToStatus:   tr.To.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         tr.QuotationID,
		FromStatus: tr.From.String(),
	}

	n, err := r.queries.UpdateQuotationStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update quotation status", err)
	}
	if n == 0 {
		return shared.ErrStaleWrite
	}

	return nil
}

func (r *QuotationRepository) UpdateTerms(ctx context.Context, q *quotation.Quotation) error {
	params, err := converter.QuotationTermsToInfra(q)
	if err != nil {
		return err
	}

	n, err := r.queries.UpdateQuotationTerms(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update quotation terms", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("quotation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *QuotationRepository) Delete(ctx context.Context, id int64, from quotation.Status) error {
	n, err := r.queries.DeleteQuotation(ctx, r.db, sqlc.DeleteQuotationParams{ID: id, Status: from.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete quotation", err)
	}
	if n == 0 {
		return shared.ErrStaleWrite
	}

	return nil
}
