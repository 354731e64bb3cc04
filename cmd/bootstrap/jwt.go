package bootstrap

import (
	"time"

	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService trusts JWT_DURATION; ConfigModule has already validated it.
func NewJWTService(cfg config.Config) *jwt.Service {
	ttl, _ := time.ParseDuration(cfg.JWT.Duration)
	return jwt.NewService(cfg.JWT.Secret, ttl, jwt.WithIssuer(cfg.JWT.Issuer))
}
