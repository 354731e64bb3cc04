//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestService_IssueAndParse(t *testing.T) {
	actor := user.NewActor(uuid.New(), user.RoleCustomer)
	svc := jwt.NewService(secret, time.Hour, jwt.WithIssuer("identity"))

	t.Run("success: round trips subject and role", func(t *testing.T) {
		token, err := svc.Issue(actor)
		require.NoError(t, err)

		claims, err := svc.Parse(token)
		require.NoError(t, err)
		id, err := claims.ActorID()
		require.NoError(t, err)
		assert.Equal(t, actor.ID, id)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("error: expired beyond leeway", func(t *testing.T) {
		past := time.Now().Add(-3 * time.Hour)
		old := jwt.NewService(secret, time.Hour, jwt.WithIssuer("identity"), jwt.WithClock(func() time.Time { return past }))
		token, err := old.Issue(actor)
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: foreign issuer", func(t *testing.T) {
		token, err := jwt.NewService(secret, time.Hour, jwt.WithIssuer("someone-else")).Issue(actor)
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour, jwt.WithIssuer("identity")).Issue(actor)
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.Parse("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
