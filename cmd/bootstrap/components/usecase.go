package components

import (
	"fmt"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/clock"
	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/internal/usecase"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"
	"gin-jewelry-b2b/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	fx.Annotate(
		order.NewULIDNumberGenerator,
		fx.As(new(order.NumberGenerator)),
	),
	newPricer,
	fx.Annotate(
		shared.NewJobNotifier,
		fx.As(new(shared.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuotationUseCase,
		commands.NewOrderUseCase,
		commands.NewOrderStatusUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuotationQueries,
		queries.NewOrderQueries,
		queries.NewPricingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// newPricer carries the default customer type used for both display and commit pricing.
func newPricer(calc pricing.Calculator, clk clock.Clock, cfg config.Config) (*shared.Pricer, error) {
	ct, err := user.NewCustomerType(cfg.Pricing.DefaultCustomerType)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_DEFAULT_CUSTOMER_TYPE %q: %w", cfg.Pricing.DefaultCustomerType, err)
	}
	return shared.NewPricer(calc, clk, cfg.Pricing.DefaultCurrency, ct), nil
}
