//go:build unit

package uow

import (
	"testing"
	"time"

	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 50 * time.Millisecond, ceiling: 300 * time.Millisecond}

	tests := []struct {
		name    string
		attempt int
		min     time.Duration
	}{
		{name: "success: first retry waits the base", attempt: 0, min: 50 * time.Millisecond},
		{name: "success: doubles per attempt", attempt: 2, min: 200 * time.Millisecond},
		{name: "success: capped at the ceiling", attempt: 5, min: 300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.backoff(tt.attempt)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.min+tt.min/5)
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "success: serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "success: deadlock through a wrap", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "approve"), want: true},
		{name: "success: lock not available", err: &pgconn.PgError{Code: pgErrCodeLockNotAvailable}, want: true},
		{name: "error: unique violation is final", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "error: domain error is final", err: errs.ErrNotFound, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
