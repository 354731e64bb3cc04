package repository

import (
	"context"

	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/infra"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
)

type MessageWriteQueries interface {
	CreateQuotationMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQuotationMessageParams) (int64, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
	db      sqlc.DBTX
}

func NewMessageRepository(queries MessageWriteQueries, db sqlc.DBTX) *MessageRepository {
	return &MessageRepository{queries: queries, db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *quotation.Message) (int64, error) {
	params := sqlc.CreateQuotationMessageParams{
		QuotationID: m.QuotationID(),
		SenderID:    m.SenderID(),
		SenderRole:  m.SenderRole().String(),
		Body:        m.Body(),
		CreatedAt:   pgconv.TimeToPgtype(m.CreatedAt()),
	}

	id, err := r.queries.CreateQuotationMessage(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create quotation message", err)
	}
	return id, nil
}
