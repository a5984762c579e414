package response

import (
	"time"

	"shalean-booking-api/internal/usecase/commands"
)

type TransactionResponse struct {
	Reference string     `json:"reference"`
	Status    string     `json:"status"`
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Channel   string     `json:"channel,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

type VerifyPaymentResponse struct {
	Verified    bool                   `json:"verified"`
	Booking     *BookingDetailResponse `json:"booking,omitempty"`
	Transaction *TransactionResponse   `json:"transaction,omitempty"`
}

func FromVerifyPaymentResult(result *commands.VerifyPaymentResult) (*VerifyPaymentResponse, error) {
	resp := &VerifyPaymentResponse{Verified: result.Verified}

	if result.Booking != nil {
		detail, err := FromBookingDetailView(result.Booking)
		if err != nil {
			return nil, err
		}
		resp.Booking = detail
	}
	if result.Transaction != nil {
		resp.Transaction = &TransactionResponse{
			Reference: result.Transaction.Reference,
			Status:    result.Transaction.Status,
			Amount:    result.Transaction.Amount,
			Currency:  result.Transaction.Currency,
			Channel:   result.Transaction.Channel,
			PaidAt:    result.Transaction.PaidAt,
		}
	}
	return resp, nil
}
