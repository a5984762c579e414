//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shalean-booking-api/internal/domain/booking"
	reqdto "shalean-booking-api/internal/handler/dto/request"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/infra/paystack"
	"shalean-booking-api/internal/infra/session"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/commands"
	"shalean-booking-api/internal/usecase/queries"
	"shalean-booking-api/tests/common/builder"
	commandsmock "shalean-booking-api/tests/mock/commands"
	queriesmock "shalean-booking-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	bookingRepo *commandsmock.MockBookingRepository
	bookingQs   *queriesmock.MockBookingQueries
	gateway     *commandsmock.MockPaymentGateway
	mailer      *commandsmock.MockMailer
	sessions    *session.MemoryStore
	uc          commands.CheckoutCommands
	customerID  uuid.UUID
	bookingID   uuid.UUID
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.bookingQs = queriesmock.NewMockBookingQueries(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.mailer = commandsmock.NewMockMailer(s.ctrl)
	s.sessions = session.NewMemoryStore()
	s.customerID = uuid.New()
	s.bookingID = uuid.New()

	cfg := config.NewTestConfig()
	s.uc = commands.NewCheckoutUseCase(
		s.bookingRepo, s.bookingQs, s.gateway, s.mailer, s.sessions, cfg.Payment,
	)
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

const reference = "SB-ABCDEF1234-1756728000"

func (s *CheckoutUseCaseTestSuite) openSnapshot(total int64) *commands.BookingSnapshot {
	ref := reference
	return &commands.BookingSnapshot{
		ID:         s.bookingID,
		CustomerID: s.customerID,
		Status:     booking.StatusReadyForPayment,
		TotalPrice: booking.NewMoney(total),
		PaymentRef: &ref,
	}
}

func (s *CheckoutUseCaseTestSuite) TestVerifyPayment() {
	req := reqdto.VerifyPaymentRequest{Reference: reference}

	s.Run("confirms the booking on a successful charge", func() {
		snap := s.openSnapshot(6300000)
		s.Require().NoError(s.sessions.Save(context.Background(), s.customerID, builder.NewSelectionBuilder().Build()))

		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).
			Return(&paystack.Transaction{Status: paystack.TransactionSuccess, Reference: reference, Amount: 6300000, Currency: "NGN"}, nil)
		s.bookingRepo.EXPECT().ConfirmPayment(gomock.Any(), s.bookingID, booking.StatusConfirmed, booking.PaymentStatusPaid, reference).
			Return(&commands.BookingSnapshot{ID: s.bookingID, CustomerID: s.customerID, Status: booking.StatusConfirmed}, nil)

		detail := &queries.BookingDetailView{}
		detail.ID = s.bookingID
		s.bookingQs.EXPECT().GetByID(gomock.Any(), s.customerID, s.bookingID).Return(detail, nil)
		s.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), detail).Return(nil)

		result, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.True(result.Verified)
		s.Equal(s.bookingID, result.Booking.ID)

		// The wizard session is gone once the booking is paid.
		_, err = s.sessions.Get(context.Background(), s.customerID)
		s.ErrorIs(err, session.ErrNotFound)
	})

	s.Run("failed charge records the failure without confirming", func() {
		snap := s.openSnapshot(6300000)
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).
			Return(&paystack.Transaction{Status: "failed", Reference: reference, Amount: 6300000, GatewayResponse: "Declined"}, nil)
		// PendingOnFailure is off in the test config, so the status is kept.
		s.bookingRepo.EXPECT().ConfirmPayment(gomock.Any(), s.bookingID, booking.StatusReadyForPayment, booking.PaymentStatusFailed, reference).
			Return(&commands.BookingSnapshot{ID: s.bookingID, CustomerID: s.customerID, Status: booking.StatusReadyForPayment}, nil)
		s.bookingQs.EXPECT().GetByID(gomock.Any(), s.customerID, s.bookingID).Return(&queries.BookingDetailView{}, nil)

		result, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.False(result.Verified)
		s.Equal("Declined", result.Transaction.GatewayResponse)
	})

	s.Run("paid amount must match the stored total", func() {
		snap := s.openSnapshot(6300000)
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).
			Return(&paystack.Transaction{Status: paystack.TransactionSuccess, Reference: reference, Amount: 100, Currency: "NGN"}, nil)

		_, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrPaymentAmountMismatch))
	})

	s.Run("foreign currency is rejected", func() {
		snap := s.openSnapshot(6300000)
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).
			Return(&paystack.Transaction{Status: paystack.TransactionSuccess, Reference: reference, Amount: 6300000, Currency: "USD"}, nil)

		_, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrPaymentCurrencyInvalid))
	})

	s.Run("no open booking", func() {
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).
			Return(nil, infra.WrapRepoErr("no open booking", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrNoOpenBooking))
	})

	s.Run("a still-draft booking is not payable", func() {
		snap := s.openSnapshot(6300000)
		snap.Status = booking.StatusDraft
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)

		_, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrBookingNotPayable))
	})

	s.Run("gateway error maps to not verified", func() {
		snap := s.openSnapshot(6300000)
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).Return(nil, context.DeadlineExceeded)

		_, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrPaymentNotVerified))
	})

	s.Run("a reference the booking never issued is rejected", func() {
		snap := s.openSnapshot(6300000)
		other := "SB-0000000000-1756728000"
		snap.PaymentRef = &other
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)

		_, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrPaymentRefMismatch))
	})

	s.Run("declined charge parks the booking when configured", func() {
		cfg := config.NewTestConfig()
		cfg.Payment.PendingOnFailure = true
		uc := commands.NewCheckoutUseCase(
			s.bookingRepo, s.bookingQs, s.gateway, s.mailer, s.sessions, cfg.Payment,
		)

		snap := s.openSnapshot(6300000)
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).
			Return(&paystack.Transaction{Status: "failed", Reference: reference, Amount: 6300000}, nil)
		s.bookingRepo.EXPECT().ConfirmPayment(gomock.Any(), s.bookingID, booking.StatusPending, booking.PaymentStatusFailed, reference).
			Return(&commands.BookingSnapshot{ID: s.bookingID, CustomerID: s.customerID, Status: booking.StatusPending}, nil)
		s.bookingQs.EXPECT().GetByID(gomock.Any(), s.customerID, s.bookingID).Return(&queries.BookingDetailView{}, nil)

		result, err := uc.VerifyPayment(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.False(result.Verified)
	})

	s.Run("a parked booking can still be verified", func() {
		snap := s.openSnapshot(6300000)
		snap.Status = booking.StatusPending
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.gateway.EXPECT().VerifyTransaction(gomock.Any(), reference).
			Return(&paystack.Transaction{Status: paystack.TransactionSuccess, Reference: reference, Amount: 6300000, Currency: "NGN"}, nil)
		s.bookingRepo.EXPECT().ConfirmPayment(gomock.Any(), s.bookingID, booking.StatusConfirmed, booking.PaymentStatusPaid, reference).
			Return(&commands.BookingSnapshot{ID: s.bookingID, CustomerID: s.customerID, Status: booking.StatusConfirmed}, nil)

		detail := &queries.BookingDetailView{}
		detail.ID = s.bookingID
		s.bookingQs.EXPECT().GetByID(gomock.Any(), s.customerID, s.bookingID).Return(detail, nil)
		s.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), detail).Return(nil)

		result, err := s.uc.VerifyPayment(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.True(result.Verified)
	})
}

func (s *CheckoutUseCaseTestSuite) TestCancel() {
	s.Run("cancels the open booking and clears the session", func() {
		snap := s.openSnapshot(6300000)
		s.Require().NoError(s.sessions.Save(context.Background(), s.customerID, builder.NewSelectionBuilder().Build()))

		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).Return(snap, nil)
		s.bookingRepo.EXPECT().SetStatus(gomock.Any(), s.bookingID, booking.StatusReadyForPayment, booking.StatusCancelled).
			Return(&commands.BookingSnapshot{ID: s.bookingID, Status: booking.StatusCancelled}, nil)

		err := s.uc.Cancel(context.Background(), s.customerID)

		s.Require().NoError(err)
		_, err = s.sessions.Get(context.Background(), s.customerID)
		s.ErrorIs(err, session.ErrNotFound)
	})

	s.Run("nothing to cancel", func() {
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).
			Return(nil, infra.WrapRepoErr("no open booking", pgx.ErrNoRows, infra.KindNotFound))

		err := s.uc.Cancel(context.Background(), s.customerID)

		s.True(errs.Is(err, commands.ErrNoOpenBooking))
	})
}
