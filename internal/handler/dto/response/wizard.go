package response

import (
	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteSummaryResponse struct {
	Subtotal   int64 `json:"subtotal"`
	Discount   int64 `json:"discount"`
	ServiceFee int64 `json:"serviceFee"`
	Total      int64 `json:"total"`
}

type WizardStateResponse struct {
	Step      string               `json:"step"`
	Selection booking.Selection    `json:"selection"`
	Summary   QuoteSummaryResponse `json:"summary"`
}

type PaymentInitResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Reference string    `json:"reference"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Email     string    `json:"email"`
}

func FromWizardState(state *commands.WizardState) *WizardStateResponse {
	return &WizardStateResponse{
		Step:      state.Selection.Step.String(),
		Selection: state.Selection,
		Summary: QuoteSummaryResponse{
			Subtotal:   state.Summary.Subtotal.Minor(),
			Discount:   state.Summary.Discount.Minor(),
			ServiceFee: state.Summary.ServiceFee.Minor(),
			Total:      state.Summary.Total.Minor(),
		},
	}
}

func FromPaymentInit(init *commands.PaymentInit) *PaymentInitResponse {
	return &PaymentInitResponse{
		BookingID: init.BookingID,
		Reference: init.Reference,
		Amount:    init.Amount.Minor(),
		Currency:  init.Currency,
		Email:     init.Email,
	}
}
