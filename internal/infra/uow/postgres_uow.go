package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes worth replaying the whole transaction for. Group actions lock
// several quotation rows, and default-status flips rewrite two status rows, so
// concurrent writers can deadlock or time out waiting for a lock.
const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type retryPolicy struct {
	maxRetries int
	base       time.Duration
	ceiling    time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 50 * time.Millisecond, ceiling: time.Second}

// backoff doubles per attempt, capped, with up to 20% jitter on top.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if wait <= 0 || wait > p.ceiling {
		wait = p.ceiling
	}
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j))
	}
	return wait
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger.With("component", "uow"),
		policy: defaultRetryPolicy,
	}
}

// Within runs fn in a read-committed transaction. Aggregates are loaded
// FOR UPDATE by the repositories, so read committed is enough for the
// quotation and order state machines.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var lastErr error
	for attempt := 0; attempt <= u.policy.maxRetries; attempt++ {
		lastErr = u.attempt(ctx, opts, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryableError(lastErr) {
			return lastErr
		}
		if attempt == u.policy.maxRetries {
			break
		}

		wait := u.policy.backoff(attempt)
		u.logger.WarnContext(ctx, "replaying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"sqlstate", sqlState(lastErr))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	u.logger.ErrorContext(ctx, "transaction kept conflicting",
		"attempts", u.policy.maxRetries+1,
		"sqlstate", sqlState(lastErr))
	return errs.Classify(errs.Wrap(lastErr, "concurrent update, please retry"), errs.ErrConflict)
}

// WithinReadOnly gives a consistent multi-table snapshot for pricing reads.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, newCommandReads(u.q, pgxTx)); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// attempt owns exactly one pgx transaction so nothing is deferred across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	// context.WithoutCancel: a cancelled request must still release its locks.
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		u.logger.WarnContext(ctx, "rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	switch sqlState(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
