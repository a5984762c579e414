package commands

import (
	"context"
	"log/slog"

	"shalean-booking-api/internal/domain/booking"
	reqdto "shalean-booking-api/internal/handler/dto/request"
	"shalean-booking-api/internal/infra/paystack"
	"shalean-booking-api/internal/infra/session"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrNoOpenBooking          = errs.New("no open booking")
	ErrBookingNotPayable      = errs.New("booking is not awaiting payment")
	ErrPaymentNotVerified     = errs.New("payment could not be verified")
	ErrPaymentAmountMismatch  = errs.New("paid amount does not match booking total")
	ErrPaymentCurrencyInvalid = errs.New("payment currency does not match")
	ErrPaymentRefMismatch     = errs.New("payment reference does not match booking")
)

type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*paystack.Transaction, error)
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, detail *queries.BookingDetailView) error
}

type VerifyPaymentResult struct {
	Verified    bool
	Booking     *queries.BookingDetailView
	Transaction *paystack.Transaction
}

type CheckoutCommands interface {
	VerifyPayment(ctx context.Context, customerID uuid.UUID, req reqdto.VerifyPaymentRequest) (*VerifyPaymentResult, error)
	Cancel(ctx context.Context, customerID uuid.UUID) error
}

type checkoutUseCaseImpl struct {
	bookingRepo    BookingRepository
	bookingQueries queries.BookingQueries
	gateway        PaymentGateway
	mailer         Mailer
	sessions       session.Store
	paymentCfg     config.PaymentConfig
}

func NewCheckoutUseCase(
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	gateway PaymentGateway,
	mailer Mailer,
	sessions session.Store,
	paymentCfg config.PaymentConfig,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		bookingRepo:    bookingRepo,
		bookingQueries: bookingQueries,
		gateway:        gateway,
		mailer:         mailer,
		sessions:       sessions,
		paymentCfg:     paymentCfg,
	}
}

// VerifyPayment asks Paystack for the authoritative transaction state and
// settles the open booking accordingly. The stored total, not anything the
// client sent, is what the paid amount is checked against.
func (c *checkoutUseCaseImpl) VerifyPayment(ctx context.Context, customerID uuid.UUID, req reqdto.VerifyPaymentRequest) (*VerifyPaymentResult, error) {
	snap, err := c.bookingRepo.FindOpenByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrNoOpenBooking)
	}
	if snap.Status != booking.StatusReadyForPayment && snap.Status != booking.StatusPending {
		return nil, errs.Mark(errs.New("booking status "+snap.Status.String()), ErrBookingNotPayable)
	}
	// Only the reference issued for this booking settles it. Anything else,
	// including a reference from an older paid booking, is rejected before
	// the gateway is asked.
	if snap.PaymentRef == nil || *snap.PaymentRef != req.Reference {
		return nil, errs.Mark(errs.New("unknown reference"), ErrPaymentRefMismatch)
	}

	tx, err := c.gateway.VerifyTransaction(ctx, req.Reference)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotVerified)
	}

	if !tx.Succeeded() {
		return c.recordFailure(ctx, snap, tx)
	}

	if tx.Amount != snap.TotalPrice.Minor() {
		return nil, errs.Mark(errs.New("amount mismatch"), ErrPaymentAmountMismatch)
	}
	if tx.Currency != "" && tx.Currency != c.paymentCfg.Currency {
		return nil, errs.Mark(errs.New("currency mismatch"), ErrPaymentCurrencyInvalid)
	}

	confirmed, err := c.bookingRepo.ConfirmPayment(ctx, snap.ID, booking.StatusConfirmed, booking.PaymentStatusPaid, tx.Reference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.sessions.Delete(ctx, customerID); err != nil {
		slog.Warn("failed to clear wizard session after payment", "customer_id", customerID, "error", err)
	}

	detail, err := c.bookingQueries.GetByID(ctx, customerID, confirmed.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.mailer.SendBookingConfirmation(ctx, detail); err != nil {
		// Confirmation email is best effort; the booking is already paid.
		slog.Warn("failed to send booking confirmation", "booking_id", confirmed.ID, "error", err)
	}

	return &VerifyPaymentResult{
		Verified:    true,
		Booking:     detail,
		Transaction: tx,
	}, nil
}

func (c *checkoutUseCaseImpl) recordFailure(ctx context.Context, snap *BookingSnapshot, tx *paystack.Transaction) (*VerifyPaymentResult, error) {
	to := snap.Status
	if c.paymentCfg.PendingOnFailure {
		to = booking.StatusPending
	}

	updated, err := c.bookingRepo.ConfirmPayment(ctx, snap.ID, to, booking.PaymentStatusFailed, tx.Reference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	detail, err := c.bookingQueries.GetByID(ctx, snap.CustomerID, updated.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &VerifyPaymentResult{
		Verified:    false,
		Booking:     detail,
		Transaction: tx,
	}, nil
}

// Cancel abandons the open booking and clears the wizard session.
func (c *checkoutUseCaseImpl) Cancel(ctx context.Context, customerID uuid.UUID) error {
	snap, err := c.bookingRepo.FindOpenByCustomer(ctx, customerID)
	if err != nil {
		return errs.Mark(err, ErrNoOpenBooking)
	}

	if _, err := c.bookingRepo.SetStatus(ctx, snap.ID, snap.Status, booking.StatusCancelled); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.sessions.Delete(ctx, customerID); err != nil {
		slog.Warn("failed to clear wizard session after cancel", "customer_id", customerID, "error", err)
	}
	return nil
}
