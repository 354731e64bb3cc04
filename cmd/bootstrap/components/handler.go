package components

import (
	"gin-jewelry-b2b/internal/handler"
	"gin-jewelry-b2b/internal/handler/api"
	"gin-jewelry-b2b/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewQuotationHandler,
		api.NewAdminQuotationHandler,
		api.NewOrderHandler,
		api.NewOrderStatusHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	pricing *api.PricingHandler,
	quotation *api.QuotationHandler,
	adminQuotation *api.AdminQuotationHandler,
	order *api.OrderHandler,
	orderStatus *api.OrderStatusHandler,
) handler.Handlers {
	return handler.Handlers{
		Pricing:        pricing,
		Quotation:      quotation,
		AdminQuotation: adminQuotation,
		Order:          order,
		OrderStatus:    orderStatus,
	}
}
