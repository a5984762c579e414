//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/tests/common/authtest"
	"shalean-booking-api/tests/common/builder"
	"shalean-booking-api/tests/common/dbtest"
	"shalean-booking-api/tests/common/httptest"
	"shalean-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	wizardURL   = "/api/bookings/wizard"
	bookingsURL = "/api/bookings"
	verifyURL   = "/api/checkout/verify"
	cancelURL   = "/api/checkout/cancel"
)

type fakeGateway struct {
	mu       sync.Mutex
	status   string
	amount   int64
	currency string
}

func (g *fakeGateway) set(status string, amount int64, currency string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = status
	g.amount = amount
	g.currency = currency
}

func (g *fakeGateway) handler(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	reference := r.URL.Path[len("/transaction/verify/"):]
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  true,
		"message": "Verification successful",
		"data": map[string]any{
			"status":           g.status,
			"reference":        reference,
			"amount":           g.amount,
			"currency":         g.currency,
			"channel":          "card",
			"gateway_response": g.status,
		},
	})
}

type bookingSuite struct {
	e2e.SharedSuite
	gateway      *fakeGateway
	fakePaystack *nethttptest.Server
	fakeResend   *nethttptest.Server
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.gateway = &fakeGateway{}
	s.fakePaystack = nethttptest.NewServer(http.HandlerFunc(s.gateway.handler))
	s.fakeResend = nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "e-1"}`))
	}))

	s.SetupSharedSuite(s.T(), func(cfg *config.Config) {
		cfg.Payment.PaystackBaseURL = s.fakePaystack.URL
		cfg.Mail.ResendBaseURL = s.fakeResend.URL
	})
}

func (s *bookingSuite) TearDownSuite() {
	s.fakePaystack.Close()
	s.fakeResend.Close()
}

// walkWizard drives the wizard from service selection to a frozen quote and
// returns the charge parameters.
func (s *bookingSuite) walkWizard(token string) resdto.PaymentInitResponse {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL+"/service",
		builder.NewSubmitServiceRequest(), token)
	var state resdto.WizardStateResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &state)
	s.Equal("property", state.Step)

	regionID, suburbID := dbtest.FindRegionWithSuburb(t, s.DB)
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL+"/property",
		builder.NewSubmitPropertyRequest(regionID, suburbID), token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &state)
	s.Equal("schedule", state.Step)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL+"/schedule",
		builder.NewSubmitScheduleRequest(), token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &state)
	s.Equal("extras", state.Step)

	serviceID := dbtest.FindServiceID(t, s.DB, "standard-cleaning")
	extraID := dbtest.FindServiceExtraID(t, s.DB, serviceID)
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL+"/extras",
		map[string]any{"extra_ids": []uuid.UUID{extraID}}, token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &state)
	s.Equal("review", state.Step)
	s.NotZero(state.Summary.Total)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL+"/contact",
		builder.NewSubmitContactRequest(), token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &state)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL+"/complete", nil, token)
	var initResp resdto.PaymentInitResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &initResp)
	s.NotEmpty(initResp.Reference)
	s.Equal(state.Summary.Total, initResp.Amount)

	return initResp
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("full wizard to confirmed booking", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "flow@example.com")

		initResp := s.walkWizard(token)
		s.gateway.set("success", initResp.Amount, "NGN")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, verifyURL,
			map[string]any{"reference": initResp.Reference}, token)

		var verify resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verify)
		s.True(verify.Verified)
		s.Require().NotNil(verify.Booking)
		s.Equal("CONFIRMED", verify.Booking.Status)
		s.Equal(initResp.Amount, verify.Booking.TotalPrice)
		s.NotEmpty(verify.Booking.Items)
		s.NotEmpty(verify.Booking.Extras)

		// The confirmed booking shows up in the customer's history.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, token)
		var list []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Require().Len(list, 1)
		s.Equal("CONFIRMED", list[0].Status)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"/"+verify.Booking.ID.String(), nil, token)
		var detail resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &detail)
		s.Equal("CONFIRMED", detail.Status)
	})

	s.Run("declined charge leaves the booking payable", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "declined@example.com")

		initResp := s.walkWizard(token)
		s.gateway.set("failed", initResp.Amount, "NGN")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, verifyURL,
			map[string]any{"reference": initResp.Reference}, token)

		var verify resdto.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verify)
		s.False(verify.Verified)
		s.Require().NotNil(verify.Booking)
		s.Equal("READY_FOR_PAYMENT", verify.Booking.Status)

		// A second attempt with a successful charge still goes through.
		s.gateway.set("success", initResp.Amount, "NGN")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, verifyURL,
			map[string]any{"reference": initResp.Reference}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verify)
		s.True(verify.Verified)
	})

	s.Run("amount mismatch answers 409", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "mismatch@example.com")

		initResp := s.walkWizard(token)
		s.gateway.set("success", initResp.Amount-100, "NGN")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, verifyURL,
			map[string]any{"reference": initResp.Reference}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Payment does not match the booking total")
	})

	s.Run("cancel clears the open booking", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "cancel@example.com")

		s.walkWizard(token)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		// Nothing left to verify against.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, verifyURL,
			map[string]any{"reference": "SB-ABCDEF1234-1"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking awaiting payment")
	})

	s.Run("wizard state survives a new session", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "resume@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, wizardURL+"/service",
			builder.NewSubmitServiceRequest(), token)
		var state resdto.WizardStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &state)

		// Logging in again resumes the same draft from Redis.
		token2 := authtest.LoginCustomer(s.T(), s.Router, "resume@example.com", "password123")
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, wizardURL, nil, token2)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &state)
		s.Equal("property", state.Step)
		s.Require().NotNil(state.Selection.Service)
		s.Equal("standard-cleaning", state.Selection.Service.Slug)
	})
}
