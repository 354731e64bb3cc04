package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/handler/api"
	"gin-jewelry-b2b/internal/handler/middleware"
	"gin-jewelry-b2b/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Pricing        *api.PricingHandler
	Quotation      *api.QuotationHandler
	AdminQuotation *api.AdminQuotationHandler
	Order          *api.OrderHandler
	OrderStatus    *api.OrderStatusHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// request id first so recovery and error logs can carry it
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
		})

		quotations := apiGroup.Group("/quotations")
		addRoutes(quotations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Quotation.Create},
			{Method: http.MethodPost, Path: "/from-cart", Handler: h.Quotation.CreateFromCart},
			{Method: http.MethodGet, Path: "", Handler: h.Quotation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Quotation.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Quotation.Delete},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Quotation.Confirm},
			{Method: http.MethodPost, Path: "/:id/decline", Handler: h.Quotation.Decline},
			{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Quotation.Messages},
			{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Quotation.PostMessage},
			{Method: http.MethodGet, Path: "/:id/history", Handler: h.Quotation.History},
		})

		orders := apiGroup.Group("/orders")
		addRoutes(orders, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			{Method: http.MethodGet, Path: "/:id/history", Handler: h.Order.History},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.Cancel},
		})

		adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/quotations/:id/reject", Handler: h.AdminQuotation.Reject, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/quotations/:id/request-confirmation", Handler: h.AdminQuotation.RequestConfirmation, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/quotations/:id/approve", Handler: h.AdminQuotation.Approve, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/quotation-groups/:groupId/reject", Handler: h.AdminQuotation.RejectGroup, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/quotation-groups/:groupId/request-confirmation", Handler: h.AdminQuotation.RequestGroupConfirmation, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/quotation-groups/:groupId/approve", Handler: h.AdminQuotation.ApproveGroup, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/orders/:id/status", Handler: h.Order.TransitionStatus, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/order-statuses", Handler: h.OrderStatus.List, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/order-statuses", Handler: h.OrderStatus.Create, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/order-statuses/:id", Handler: h.OrderStatus.Update, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/order-statuses", Handler: h.OrderStatus.DeleteMany, Mw: adminOnly},
		})

		systemOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSystem)}
		system := apiGroup.Group("/system")
		addRoutes(system, []route{
			{Method: http.MethodPost, Path: "/orders/:id/status", Handler: h.Order.TransitionStatus, Mw: systemOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
