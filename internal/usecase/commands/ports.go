package commands

import (
	"time"

	"shalean-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type BookingSnapshot struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	ServiceID     *uuid.UUID
	Status        booking.Status
	Frequency     *string
	StartTime     *time.Time
	TotalPrice    booking.Money
	PaymentRef    *string
	PaymentStatus *string
	ContactName   *string
	ContactEmail  *string
	ContactPhone  *string
}

type ExtraSnapshot struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	Name      string
	Price     booking.Money
}

type SuburbSnapshot struct {
	ID       uuid.UUID
	RegionID uuid.UUID
	Name     string
}

// DraftPatch is a partial update; nil fields keep the stored value.
type DraftPatch struct {
	ServiceID    *uuid.UUID
	RegionID     *uuid.UUID
	SuburbID     *uuid.UUID
	Address      *string
	Notes        *string
	Frequency    *string
	StartTime    *time.Time
	EndTime      *time.Time
	CleanerID    *uuid.UUID
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	TotalPrice   *int64
}

type ReviewCompletion struct {
	TotalPrice   booking.Money
	StartTime    time.Time
	EndTime      time.Time
	Frequency    booking.Frequency
	Notes        *string
	ContactName  string
	ContactEmail string
	ContactPhone string
	CleanerID    *uuid.UUID
	PaymentRef   string
}
