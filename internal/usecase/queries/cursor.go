package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"gin-jewelry-b2b/internal/pkg/errs"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	keysetVersion = "q1"
)

var ErrInvalidCursor = errs.Validation(errs.New("invalid cursor"))

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is the position after which the next page starts. Status is the
// filter the page was listed with; a cursor replayed under another filter
// would silently skip rows, so decoding rejects it.
type Keyset struct {
	CreatedAt time.Time
	ID        int64
	Status    string
}

// Encode keeps microseconds only, matching timestamptz.
func (k Keyset) Encode() string {
	raw := strings.Join([]string{
		keysetVersion,
		strconv.FormatInt(k.CreatedAt.UnixMicro(), 10),
		strconv.FormatInt(k.ID, 10),
		k.Status,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeKeyset parses cursor and checks it was issued for status.
func DecodeKeyset(cursor, status string) (Keyset, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "not base64")
	}
	parts := strings.Split(string(decoded), "|")
	if len(parts) != 4 || parts[0] != keysetVersion {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "unknown format")
	}
	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "bad timestamp")
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || id <= 0 {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "bad id")
	}
	if parts[3] != status {
		return Keyset{}, errs.Wrap(ErrInvalidCursor, "issued for another status filter")
	}
	return Keyset{CreatedAt: time.UnixMicro(micros), ID: id, Status: status}, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
