package converter

import (
	"gin-jewelry-b2b/internal/domain/history"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
)

func QuotationHistoryToInfra(quotationID int64, e history.Entry) (sqlc.CreateQuotationHistoryParams, error) {
	meta, err := e.Meta.JSON()
	if err != nil {
		return sqlc.CreateQuotationHistoryParams{}, errs.Wrap(err, "failed to encode history meta")
	}
	return sqlc.CreateQuotationHistoryParams{
		QuotationID: quotationID,
		Status:      e.Status,
		ActorGuard:  string(e.ActorGuard),
		ActorID:     pgconv.UUIDPtrToPgtype(e.ActorID),
		Meta:        meta,
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt),
	}, nil
}

func OrderHistoryToInfra(orderID int64, e history.Entry) (sqlc.CreateOrderHistoryParams, error) {
	meta, err := e.Meta.JSON()
	if err != nil {
		return sqlc.CreateOrderHistoryParams{}, errs.Wrap(err, "failed to encode history meta")
	}
	return sqlc.CreateOrderHistoryParams{
		OrderID:    orderID,
		Status:     e.Status,
		ActorGuard: string(e.ActorGuard),
		ActorID:    pgconv.UUIDPtrToPgtype(e.ActorID),
		Meta:       meta,
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt),
	}, nil
}
