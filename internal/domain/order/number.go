package order

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const NumberPrefix = "ORD-"

type NumberGenerator interface {
	Next(at time.Time) string
}

// ULIDNumberGenerator issues lexically sortable order numbers. Safe for concurrent use.
type ULIDNumberGenerator struct {
	mu      sync.Mutex
	entropy io.Reader
}

func NewULIDNumberGenerator() *ULIDNumberGenerator {
	return &ULIDNumberGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDNumberGenerator) Next(at time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return NumberPrefix + ulid.MustNew(ulid.Timestamp(at), g.entropy).String()
}
