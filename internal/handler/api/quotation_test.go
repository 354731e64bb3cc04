//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/handler/api"
	"gin-jewelry-b2b/internal/handler/middleware"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"
	"gin-jewelry-b2b/tests/common/builder"
	"gin-jewelry-b2b/tests/common/httptest"
	"gin-jewelry-b2b/tests/common/testutil"
	commandsmock "gin-jewelry-b2b/tests/mock/commands"
	queriesmock "gin-jewelry-b2b/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer token authenticates as actor.
func fakeAuth(actor user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func sampleBreakdown() pricing.Breakdown {
	return pricing.Breakdown{
		Currency: "INR",
		Metal:    decimal.RequireFromString("63000"),
		Diamond:  decimal.RequireFromString("25000"),
		Making:   decimal.RequireFromString("5000"),
		Subtotal: decimal.RequireFromString("93000"),
		Discount: decimal.RequireFromString("500"),
		Tax:      decimal.RequireFromString("2775"),
		Total:    decimal.RequireFromString("95275"),
	}
}

type QuotationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuotationCommands
	mockQueries  *queriesmock.MockQuotationQueries
	handler      *api.QuotationHandler
	customer     user.Actor
}

func (s *QuotationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuotationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuotationQueries(s.mockCtrl)
	s.handler = api.NewQuotationHandler(s.mockCommands, s.mockQueries)
	s.customer = user.NewActor(uuid.New(), user.RoleCustomer)

	auth := fakeAuth(s.customer)
	s.router.POST("/quotations", auth, s.handler.Create)
	s.router.POST("/quotations/from-cart", auth, s.handler.CreateFromCart)
	s.router.GET("/quotations", auth, s.handler.List)
	s.router.GET("/quotations/:id", auth, s.handler.Get)
	s.router.DELETE("/quotations/:id", auth, s.handler.Delete)
	s.router.POST("/quotations/:id/confirm", auth, s.handler.Confirm)
	s.router.POST("/quotations/:id/decline", auth, s.handler.Decline)
	s.router.GET("/quotations/:id/messages", auth, s.handler.Messages)
	s.router.POST("/quotations/:id/messages", auth, s.handler.PostMessage)
	s.router.GET("/quotations/:id/history", auth, s.handler.History)
}

func (s *QuotationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuotationHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuotationHandlerTestSuite))
}

type testCaseQuotation struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QuotationHandlerTestSuite) TestCreate() {
	url := "/quotations"

	b := builder.NewQuotationBuilder().WithCustomerID(s.customer.ID)
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildReconstructed()

	bound := []testCaseQuotation{
		{name: "quantity boundary OK (1)", mutate: testutil.Field("quantity", 1), expectCode: http.StatusCreated},
		{name: "quantity boundary OK (10000)", mutate: testutil.Field("quantity", 10000), expectCode: http.StatusCreated},
		{name: "quantity boundary invalid (0)", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		{name: "quantity boundary invalid (10001)", mutate: testutil.Field("quantity", 10001), expectCode: http.StatusBadRequest},
		{name: "notes length OK (2000 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
		{name: "notes length invalid (2001 chars)", mutate: testutil.Field("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseQuotation{
		{name: "missing field: product_id (required)", mutate: testutil.Field("product_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: variant_id (optional)", mutate: testutil.Field("variant_id", nil), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.customer, commands.CreateQuotationRequest{
			ProductID: b.ProductID,
			VariantID: b.VariantID,
			Quantity:  b.Quantity,
			Notes:     b.Notes,
		}).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("pending", body.Status)
		s.Nil(body.Price)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/quotations/101"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseQuotation{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: maps use case errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "product not found", err: errs.Classify(errs.New("product 1 not found"), errs.ErrNotFound), expectCode: http.StatusNotFound},
			{name: "admin cannot create", err: errs.ErrForbidden, expectCode: http.StatusForbidden},
			{name: "inactive product", err: errs.Validation(quotation.ErrProductInactive), expectCode: http.StatusBadRequest},
			{name: "database failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestCreateFromCart
// ================================================================================

func (s *QuotationHandlerTestSuite) TestCreateFromCart() {
	groupID := uuid.New()
	lines := []*quotation.Quotation{
		builder.NewQuotationBuilder().WithID(1).WithGroupID(groupID).BuildReconstructed(),
		builder.NewQuotationBuilder().WithID(2).WithGroupID(groupID).BuildReconstructed(),
	}

	s.Run("success: returns every line with the shared group id", func() {
		s.mockCommands.EXPECT().CreateFromCart(gomock.Any(), s.customer).Return(lines, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/from-cart", nil, "bearer-token")

		var body struct {
			GroupID    string                      `json:"quotation_group_id"`
			Quotations []*resdto.QuotationResponse `json:"quotations"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(groupID.String(), body.GroupID)
		s.Len(body.Quotations, 2)
	})

	s.Run("error: 400 Bad Request on empty cart", func() {
		s.mockCommands.EXPECT().CreateFromCart(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation(commands.ErrEmptyCart)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/from-cart", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cart is empty")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *QuotationHandlerTestSuite) TestList() {
	views := []*queries.QuotationView{
		builder.NewQuotationBuilder().WithID(3).BuildView(),
		builder.NewQuotationBuilder().WithID(2).BuildView(),
	}

	s.Run("success: passes status filter and returns next cursor", func() {
		status := "pending"
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.customer, queries.QuotationFilters{Status: &status}, &queries.Cursor{After: "abc"}, 2).
			Return(views, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations?status=pending&limit=2&after=abc", nil, "bearer-token")

		var body struct {
			Quotations []*resdto.QuotationResponse `json:"quotations"`
			NextCursor string                      `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Quotations, 2)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: defaults limit and omits cursor on last page", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), queries.QuotationFilters{}, (*queries.Cursor)(nil), 20).
			Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations?status=shipped", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("error: 400 Bad Request on malformed cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations?after=%25%25", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *QuotationHandlerTestSuite) TestGet() {
	view := builder.NewQuotationBuilder().
		WithStatus(quotation.StatusPendingCustomerConfirmation).
		WithBreakdown(sampleBreakdown()).
		BuildView()

	s.Run("success: renders money with two decimals", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer, int64(101)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/101", nil, "bearer-token")

		var body resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Price)
		s.Equal("95275.00", body.Price.Total)
		s.Equal("500.00", body.Price.Discount)
		s.Equal("Solitaire Ring", body.ProductName)
	})

	s.Run("error: 400 Bad Request on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 Forbidden for another customer's quotation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(7)).Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/7", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(8)).Return(nil, queries.ErrQuotationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/8", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *QuotationHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.customer, int64(101)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/101", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when no longer pending", func() {
		illegal := &quotation.IllegalTransitionError{
			QuotationID: 101,
			Event:       quotation.EventDelete,
			Current:     quotation.StatusApproved,
			Required:    []quotation.Status{quotation.StatusPending},
		}
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(101)).Return(illegal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/101", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot delete quotation 101")
		var detail struct {
			Current  string   `json:"current"`
			Required []string `json:"required"`
		}
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.Equal("approved", detail.Current)
		s.Equal([]string{"pending"}, detail.Required)
	})
}

// ================================================================================
// TestCustomerTransitions
// ================================================================================

func (s *QuotationHandlerTestSuite) TestCustomerTransitions() {
	confirmed := builder.NewQuotationBuilder().
		WithStatus(quotation.StatusCustomerConfirmed).
		WithBreakdown(sampleBreakdown()).
		BuildReconstructed()

	s.Run("success: confirm without body", func() {
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), s.customer, int64(101), quotation.EventConfirm, commands.TransitionRequest{}).
			Return(&commands.TransitionResult{Quotation: confirmed}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/101/confirm", nil, "bearer-token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("customer_confirmed", body.Quotation.Status)
		s.Nil(body.OrderID)
	})

	s.Run("success: decline forwards the comment", func() {
		declined := builder.NewQuotationBuilder().WithStatus(quotation.StatusCustomerDeclined).BuildReconstructed()
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), gomock.Any(), int64(101), quotation.EventDecline, commands.TransitionRequest{Comment: "too expensive"}).
			Return(&commands.TransitionResult{Quotation: declined}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/101/decline",
			map[string]any{"comment": "too expensive"}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on illegal transition", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any(), int64(101), quotation.EventConfirm, gomock.Any()).
			Return(nil, &quotation.IllegalTransitionError{
				QuotationID: 101,
				Event:       quotation.EventConfirm,
				Current:     quotation.StatusPending,
				Required:    []quotation.Status{quotation.StatusPendingCustomerConfirmation},
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/101/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot confirm")
	})
}

// ================================================================================
// TestMessagesAndHistory
// ================================================================================

func (s *QuotationHandlerTestSuite) TestMessagesAndHistory() {
	s.Run("success: post message", func() {
		q := builder.NewQuotationBuilder().WithCustomerID(s.customer.ID).BuildReconstructed()
		msg, err := quotation.NewMessage(q, s.customer, "Can you do 18K instead?", q.CreatedAt())
		s.Require().NoError(err)
		s.mockCommands.EXPECT().PostMessage(gomock.Any(), s.customer, int64(101), "Can you do 18K instead?").
			Return(msg, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/101/messages",
			map[string]any{"body": "Can you do 18K instead?"}, "bearer-token")

		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("customer", body.SenderRole)
		s.Equal("Can you do 18K instead?", body.Body)
	})

	s.Run("error: 400 Bad Request on empty message", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotations/101/messages",
			map[string]any{"body": ""}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: list messages", func() {
		s.mockQueries.EXPECT().Messages(gomock.Any(), s.customer, int64(101)).
			Return([]*queries.MessageView{{ID: 1, QuotationID: 101, SenderID: s.customer.ID, SenderRole: "customer", Body: "hi"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/101/messages", nil, "bearer-token")

		var body struct {
			Messages []*resdto.MessageResponse `json:"messages"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Messages, 1)
	})

	s.Run("success: history has empty meta object instead of null", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.customer, int64(101)).
			Return([]*queries.HistoryEntryView{{Status: "pending", ActorGuard: "customer", ActorID: &s.customer.ID}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/101/history", nil, "bearer-token")

		var body struct {
			History []map[string]any `json:"history"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.History, 1)
		s.Equal(map[string]any{}, body.History[0]["meta"])
		s.Equal(s.customer.ID.String(), body.History[0]["actor_id"])
	})
}
