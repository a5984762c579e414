//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shalean-booking-api/internal/handler/api"
	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/infra/paystack"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/commands"
	"shalean-booking-api/internal/usecase/queries"
	"shalean-booking-api/tests/common/httptest"
	commandsmock "shalean-booking-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	customerID   uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout)
	s.customerID = uuid.New()

	// Stand-in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("customer_id", s.customerID)
		}
	})

	s.router.POST("/checkout/verify", s.handler.Verify)
	s.router.POST("/checkout/cancel", s.handler.Cancel)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestVerify() {
	url := "/checkout/verify"
	reqBody := map[string]any{"reference": "SB-ABCDEF1234-1757920000"}

	s.Run("success: confirmed booking", func() {
		detail := &queries.BookingDetailView{}
		detail.ID = uuid.New()
		detail.Status = "CONFIRMED"
		detail.TotalPrice = 6300000

		s.mockCheckout.EXPECT().VerifyPayment(gomock.Any(), s.customerID, gomock.Any()).
			Return(&commands.VerifyPaymentResult{
				Verified: true,
				Booking:  detail,
				Transaction: &paystack.Transaction{
					Status:    "success",
					Reference: "SB-ABCDEF1234-1757920000",
					Amount:    6300000,
					Currency:  "NGN",
					Channel:   "card",
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Verified)
		s.Require().NotNil(response.Booking)
		s.Require().NotNil(response.Transaction)
		s.Equal("success", response.Transaction.Status)
	})

	s.Run("success: declined charge reported without confirming", func() {
		s.mockCheckout.EXPECT().VerifyPayment(gomock.Any(), s.customerID, gomock.Any()).
			Return(&commands.VerifyPaymentResult{
				Verified: false,
				Transaction: &paystack.Transaction{
					Status:          "failed",
					Reference:       "SB-ABCDEF1234-1757920000",
					GatewayResponse: "Declined",
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Verified)
		s.Nil(response.Booking)
	})

	s.Run("error: 400 on missing reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Customer not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		// The usecase attaches sentinels as marks over the low-level cause, so
		// the cases return them the same way.
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no booking awaiting payment",
				commandsError:  errs.Mark(errors.New("sql: no rows in result set"), commands.ErrNoOpenBooking),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No booking awaiting payment",
			},
			{
				name:           "booking still in the wizard",
				commandsError:  errs.Mark(errors.New("booking status DRAFT"), commands.ErrBookingNotPayable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking is not awaiting payment",
			},
			{
				name:           "gateway could not verify",
				commandsError:  errs.Mark(errors.New("request timed out"), commands.ErrPaymentNotVerified),
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment could not be verified",
			},
			{
				name:           "amount mismatch",
				commandsError:  errs.Mark(errors.New("amount mismatch"), commands.ErrPaymentAmountMismatch),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment does not match the booking total",
			},
			{
				name:           "currency mismatch",
				commandsError:  errs.Mark(errors.New("currency mismatch"), commands.ErrPaymentCurrencyInvalid),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment does not match the booking total",
			},
			{
				name:           "reference mismatch",
				commandsError:  errs.Mark(errors.New("unknown reference"), commands.ErrPaymentRefMismatch),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment reference does not match the booking",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().VerifyPayment(gomock.Any(), s.customerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CheckoutHandlerTestSuite) TestCancel() {
	url := "/checkout/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCheckout.EXPECT().Cancel(gomock.Any(), s.customerID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when nothing to cancel", func() {
		s.mockCheckout.EXPECT().Cancel(gomock.Any(), s.customerID).
			Return(errs.Mark(errors.New("sql: no rows in result set"), commands.ErrNoOpenBooking)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No open booking")
	})
}
