//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyset_RoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)

	got, err := queries.DecodeKeyset(queries.Keyset{CreatedAt: at, ID: 42, Status: "pending"}.Encode(), "pending")

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.True(t, got.CreatedAt.Equal(at.Truncate(time.Microsecond)), "cursor keeps microseconds only")
}

func TestDecodeKeyset_Errors(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	valid := queries.Keyset{CreatedAt: time.Unix(1700000000, 0), ID: 7}.Encode()

	testCases := []struct {
		name   string
		cursor string
		status string
	}{
		{name: "error: empty", cursor: ""},
		{name: "error: not base64", cursor: "***"},
		{name: "error: unknown version", cursor: encode("q2|1|1|")},
		{name: "error: missing id", cursor: encode("q1|1700000000|")},
		{name: "error: non-numeric timestamp", cursor: encode("q1|abc|1|")},
		{name: "error: non-positive id", cursor: encode("q1|1|0|")},
		{name: "error: replayed under another filter", cursor: valid, status: "rejected"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.DecodeKeyset(tc.cursor, tc.status)
			assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
