package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadValidatedConfig,
	),
)

func loadValidatedConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := validateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// validateConfig rejects settings that would otherwise only fail on the first priced request.
func validateConfig(cfg config.Config) error {
	if _, err := user.NewCustomerType(cfg.Pricing.DefaultCustomerType); err != nil {
		return fmt.Errorf("invalid PRICING_DEFAULT_CUSTOMER_TYPE %q: %w", cfg.Pricing.DefaultCustomerType, err)
	}
	if c := strings.TrimSpace(cfg.Pricing.DefaultCurrency); len(c) != 3 {
		return fmt.Errorf("invalid PRICING_DEFAULT_CURRENCY %q: expected an ISO 4217 code", cfg.Pricing.DefaultCurrency)
	}
	if d, err := time.ParseDuration(cfg.JWT.Duration); err != nil || d <= 0 {
		return fmt.Errorf("invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	return nil
}
