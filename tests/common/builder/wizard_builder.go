//go:build unit || e2e

package builder

import (
	reqdto "shalean-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

func NewSubmitServiceRequest() reqdto.SubmitServiceRequest {
	return reqdto.SubmitServiceRequest{ServiceSlug: "standard-cleaning"}
}

func NewSubmitPropertyRequest(regionID, suburbID uuid.UUID) reqdto.SubmitPropertyRequest {
	bedrooms := int32(3)
	bathrooms := int32(2)
	return reqdto.SubmitPropertyRequest{
		RegionID:  regionID,
		SuburbID:  suburbID,
		Address:   "12 Adeola Odeku St",
		Bedrooms:  &bedrooms,
		Bathrooms: &bathrooms,
	}
}

func NewSubmitScheduleRequest() reqdto.SubmitScheduleRequest {
	return reqdto.SubmitScheduleRequest{
		Date:      "2026-09-15",
		Time:      "09:00",
		Frequency: "weekly",
	}
}

func NewSubmitContactRequest() reqdto.SubmitContactRequest {
	return reqdto.SubmitContactRequest{
		Name:  "Ada Obi",
		Email: "ada@example.com",
		Phone: "+2348012345678",
	}
}
