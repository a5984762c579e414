package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	ServiceID     *uuid.UUID `json:"service_id,omitempty"`
	ServiceSlug   *string    `json:"service_slug,omitempty"`
	ServiceName   *string    `json:"service_name,omitempty"`
	RegionID      *uuid.UUID `json:"region_id,omitempty"`
	SuburbID      *uuid.UUID `json:"suburb_id,omitempty"`
	Address       *string    `json:"address,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status"`
	Frequency     *string    `json:"frequency,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	TotalPrice    int64      `json:"total_price"`
	CleanerID     *uuid.UUID `json:"cleaner_id,omitempty"`
	CleanerName   *string    `json:"cleaner_name,omitempty"`
	PaymentRef    *string    `json:"payment_ref,omitempty"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
	ContactName   *string    `json:"contact_name,omitempty"`
	ContactEmail  *string    `json:"contact_email,omitempty"`
	ContactPhone  *string    `json:"contact_phone,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID  `json:"id"`
	ServiceName   *string    `json:"service_name,omitempty"`
	Status        string     `json:"status"`
	Frequency     *string    `json:"frequency,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	TotalPrice    int64      `json:"total_price"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type BookingItemView struct {
	ItemType  string `json:"item_type"`
	Qty       int32  `json:"qty"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

type BookingExtraView struct {
	ServiceExtraID uuid.UUID `json:"service_extra_id"`
	Name           string    `json:"name"`
	Qty            int32     `json:"qty"`
	UnitPrice      int64     `json:"unit_price"`
	LineTotal      int64     `json:"line_total"`
}

type BookingDetailView struct {
	BookingView
	Items  []BookingItemView  `json:"items"`
	Extras []BookingExtraView `json:"extras"`
}

type AuthorizedCustomerView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    *string   `json:"phone,omitempty"`
}

type ServiceView struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	BasePrice     int64     `json:"base_price"`
	BedroomPrice  int64     `json:"bedroom_price"`
	BathroomPrice int64     `json:"bathroom_price"`
}

type ServiceExtraView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

type RegionView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	State *string   `json:"state,omitempty"`
}

type SuburbView struct {
	ID       uuid.UUID `json:"id"`
	RegionID uuid.UUID `json:"region_id"`
	Name     string    `json:"name"`
	Postcode *string   `json:"postcode,omitempty"`
}

type CleanerView struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Bio             *string   `json:"bio,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
	YearsExperience int32     `json:"years_experience"`
}
