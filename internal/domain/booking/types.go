package booking

import "errors"

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

// Status is the booking lifecycle state as stored in the bookings table.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusReadyForPayment Status = "READY_FOR_PAYMENT"
	StatusPending         Status = "PENDING"
	StatusConfirmed       Status = "CONFIRMED"
	StatusInProgress      Status = "IN_PROGRESS"
	StatusCompleted       Status = "COMPLETED"
	StatusCancelled       Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusReadyForPayment, StatusPending,
		StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the booking still belongs to the active checkout
// flow. A customer may hold at most one open booking at a time; PENDING is
// open so a parked payment failure can be retried or cancelled.
func (s Status) IsOpen() bool {
	return s == StatusDraft || s == StatusReadyForPayment || s == StatusPending
}

var statusTransitions = map[Status][]Status{
	StatusDraft:           {StatusReadyForPayment, StatusCancelled},
	StatusReadyForPayment: {StatusConfirmed, StatusPending, StatusDraft, StatusReadyForPayment, StatusCancelled},
	StatusPending:         {StatusReadyForPayment, StatusConfirmed, StatusCancelled},
	StatusConfirmed:       {StatusInProgress, StatusCancelled},
	StatusInProgress:      {StatusCompleted, StatusCancelled},
	StatusCompleted:       {},
	StatusCancelled:       {},
}

// CanTransitionTo reports whether the requested transition is reachable.
// READY_FOR_PAYMENT self-transition is allowed so re-confirming the review
// step of an unpaid draft stays a valid, idempotent operation.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// ItemType tags a property line item on a booking. At most one row per
// (booking, item type) exists; submitting the property step overwrites.
type ItemType string

const (
	ItemTypeBedrooms  ItemType = "bedrooms"
	ItemTypeBathrooms ItemType = "bathrooms"
)

func (t ItemType) String() string {
	return string(t)
}

// PaymentStatus mirrors the processor's view of the charge.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}
