package repository

import (
	"context"

	"gin-jewelry-b2b/internal/infra"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/shared"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	CreateNotificationJobs(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateNotificationJobsParams) (int64, error)
}

var errShortCopy = errs.New("copy wrote fewer rows than queued")

// NotificationRepository writes the outbox rows a separate worker delivers.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{queries: queries, db: db}
}

// Enqueue uses a plain insert for one job and COPY for a batch, which is
// what a group approval produces.
func (r *NotificationRepository) Enqueue(ctx context.Context, jobs ...shared.NotificationJob) error {
	switch len(jobs) {
	case 0:
		return nil
	case 1:
		j := jobs[0]
		err := r.queries.CreateNotificationJob(ctx, r.db, sqlc.CreateNotificationJobParams{
			Kind:    j.Kind,
			Topic:   j.Topic,
			Payload: j.Payload,
			RunAt:   pgconv.TimeToPgtype(j.RunAt),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create notification job", err)
		}
		return nil
	}

	rows := make([]sqlc.CreateNotificationJobsParams, len(jobs))
	for i, j := range jobs {
		rows[i] = sqlc.CreateNotificationJobsParams{
			Kind:    j.Kind,
			Topic:   j.Topic,
			Payload: j.Payload,
			RunAt:   pgconv.TimeToPgtype(j.RunAt),
		}
	}
	n, err := r.queries.CreateNotificationJobs(ctx, r.db, rows)
	if err != nil {
		return infra.WrapRepoErr("failed to copy notification jobs", err)
	}
	if n != int64(len(rows)) {
		return infra.WrapRepoErr("failed to copy notification jobs", errShortCopy)
	}
	return nil
}
