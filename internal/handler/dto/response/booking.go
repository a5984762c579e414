package response

import (
	"time"

	"shalean-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingDetailResponse struct {
	ID            uuid.UUID                  `json:"id"`
	CustomerID    uuid.UUID                  `json:"customerId"`
	ServiceID     *uuid.UUID                 `json:"serviceId,omitempty"`
	ServiceSlug   *string                    `json:"serviceSlug,omitempty"`
	ServiceName   *string                    `json:"serviceName,omitempty"`
	RegionID      *uuid.UUID                 `json:"regionId,omitempty"`
	SuburbID      *uuid.UUID                 `json:"suburbId,omitempty"`
	Address       *string                    `json:"address,omitempty"`
	Notes         *string                    `json:"notes,omitempty"`
	Status        string                     `json:"status"`
	Frequency     *string                    `json:"frequency,omitempty"`
	StartTime     *time.Time                 `json:"startTime,omitempty"`
	EndTime       *time.Time                 `json:"endTime,omitempty"`
	TotalPrice    int64                      `json:"totalPrice"`
	CleanerID     *uuid.UUID                 `json:"cleanerId,omitempty"`
	CleanerName   *string                    `json:"cleanerName,omitempty"`
	PaymentRef    *string                    `json:"paymentRef,omitempty"`
	PaymentStatus *string                    `json:"paymentStatus,omitempty"`
	ContactName   *string                    `json:"contactName,omitempty"`
	ContactEmail  *string                    `json:"contactEmail,omitempty"`
	ContactPhone  *string                    `json:"contactPhone,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
	Items         []queries.BookingItemView  `json:"items"`
	Extras        []queries.BookingExtraView `json:"extras"`
}

type BookingListResponse struct {
	ID            uuid.UUID  `json:"id"`
	ServiceName   *string    `json:"serviceName,omitempty"`
	Status        string     `json:"status"`
	Frequency     *string    `json:"frequency,omitempty"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	TotalPrice    int64      `json:"totalPrice"`
	PaymentStatus *string    `json:"paymentStatus,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromBookingDetailView(view *queries.BookingDetailView) (*BookingDetailResponse, error) {
	var resp BookingDetailResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingListItems(items []*queries.BookingListItem) ([]*BookingListResponse, error) {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		var resp BookingListResponse
		if err := copier.Copy(&resp, item); err != nil {
			return nil, err
		}
		result[i] = &resp
	}
	return result, nil
}
