//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service does, for the configured secret and issuer.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	ttl, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.issue(t, jwt.NewService(h.cfg.Secret, ttl, jwt.WithIssuer(h.cfg.Issuer)), userID, role)
}

// CreateExpiredToken issues a token that expired well beyond the validation leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc := jwt.NewService(h.cfg.Secret, time.Hour,
		jwt.WithIssuer(h.cfg.Issuer),
		jwt.WithClock(func() time.Time { return issuedAt }))
	return h.issue(t, svc, userID, role)
}

func (h *JWTHelper) issue(t *testing.T, svc *jwt.Service, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := svc.Issue(user.NewActor(userID, role))
	require.NoError(t, err)
	return token
}
