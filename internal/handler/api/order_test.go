//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/handler/api"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/usecase/queries"
	"gin-jewelry-b2b/tests/common/httptest"
	commandsmock "gin-jewelry-b2b/tests/mock/commands"
	queriesmock "gin-jewelry-b2b/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	customer     user.Actor
	admin        user.Actor
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	h := api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.customer = user.NewActor(uuid.New(), user.RoleCustomer)
	s.admin = user.NewActor(uuid.New(), user.RoleAdmin)

	s.router.GET("/orders/:id", fakeAuth(s.customer), h.Get)
	s.router.GET("/orders/:id/history", fakeAuth(s.customer), h.History)
	s.router.POST("/orders/:id/cancel", fakeAuth(s.customer), h.Cancel)
	s.router.POST("/admin/orders/:id/status", fakeAuth(s.admin), h.TransitionStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	unit := sampleBreakdown()
	view := &queries.OrderView{
		ID:         42,
		Number:     "ORD-01JNM8Z7QK0000000000000000",
		CustomerID: s.customer.ID,
		Status:     string(order.CodePendingPayment),
		Currency:   "INR",
		Total:      decimal.RequireFromString("190550"),
		Items: []queries.OrderItemView{{
			ID:          1,
			QuotationID: 101,
			ProductID:   1,
			Quantity:    2,
			UnitPrice:   unit,
			LinePrice:   unit.Times(2),
			Configuration: order.Configuration{
				Name: "Solitaire Ring",
				SKU:  "RING-001",
			},
		}},
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns order with items", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer, int64(42)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/42", nil, "bearer-token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("190550.00", body.Total)
		s.Require().Len(body.Items, 1)
		s.Equal("190550.00", body.Items[0].LinePrice.Total)
		s.Equal("95275.00", body.Items[0].UnitPrice.Total)
		s.Equal("RING-001", body.Items[0].Configuration.SKU)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(43)).Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/43", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})

	s.Run("error: 400 on zero id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/0", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *OrderHandlerTestSuite) TestCancel() {
	s.Run("success: returns the appended history entry", func() {
		entry := history.NewEntry(string(order.CodeCancelled), history.GuardCustomer, &s.customer.ID,
			history.Meta{"reason": "changed my mind"}, time.Now())
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customer, int64(42), "changed my mind").Return(&entry, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/42/cancel",
			map[string]any{"reason": "changed my mind"}, "bearer-token")

		var body resdto.HistoryEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Equal("customer", body.ActorGuard)
	})

	s.Run("error: 400 once production started", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), int64(42), "").
			Return(nil, &order.IllegalStatusError{OrderID: 42, From: order.CodeInProduction, To: order.CodeCancelled}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/42/cancel", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot move from in_production to cancelled")
		var detail map[string]any
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.Equal("in_production", detail["from"])
	})
}

// ================================================================================
// TestTransitionStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestTransitionStatus() {
	s.Run("success: records comment in meta", func() {
		entry := history.NewEntry(string(order.CodeShipped), history.GuardAdmin, &s.admin.ID,
			history.Meta{"comment": "AWB 123"}, time.Now())
		s.mockCommands.EXPECT().
			TransitionStatus(gomock.Any(), s.admin, int64(42), "shipped", history.Meta{"comment": "AWB 123"}).
			Return(&entry, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/orders/42/status",
			map[string]any{"status": "shipped", "comment": "AWB 123"}, "bearer-token")

		var body resdto.HistoryEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("shipped", body.Status)
		s.Equal("AWB 123", body.Meta["comment"])
	})

	s.Run("error: 400 when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/orders/42/status",
			map[string]any{"comment": "no target"}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on unknown status code", func() {
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), int64(42), "teleported", history.Meta{}).
			Return(nil, &order.IllegalStatusError{OrderID: 42, From: order.CodePending, To: "teleported", Reason: "unknown status"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/orders/42/status",
			map[string]any{"status": "teleported"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown status")
	})
}
