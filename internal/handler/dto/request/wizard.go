package request

import (
	"github.com/google/uuid"
)

type SubmitServiceRequest struct {
	ServiceSlug string `json:"service_slug" binding:"required"`
}

type SubmitPropertyRequest struct {
	RegionID  uuid.UUID `json:"region_id" binding:"required"`
	SuburbID  uuid.UUID `json:"suburb_id" binding:"required"`
	Address   string    `json:"address" binding:"required"`
	Bedrooms  *int32    `json:"bedrooms,omitempty"`
	Bathrooms *int32    `json:"bathrooms,omitempty"`
}

type SubmitScheduleRequest struct {
	Date      string     `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string     `json:"time" binding:"required,datetime=15:04"`
	Frequency string     `json:"frequency" binding:"required"`
	CleanerID *uuid.UUID `json:"cleaner_id,omitempty"`
}

// SubmitExtrasRequest carries the full set of selected extras; extras absent
// from the list are removed from the draft.
type SubmitExtrasRequest struct {
	ExtraIDs            []uuid.UUID `json:"extra_ids"`
	SpecialInstructions *string     `json:"special_instructions,omitempty"`
}

type SubmitContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}
