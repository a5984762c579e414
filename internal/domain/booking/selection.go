package booking

import (
	"time"

	"github.com/google/uuid"
)

// Limits bounds the clampable property counters. Clamping happens at the
// setters, never inside the pricing engine.
type Limits struct {
	MinBedrooms  int32
	MaxBedrooms  int32
	MinBathrooms int32
	MaxBathrooms int32
}

func DefaultLimits() Limits {
	return Limits{
		MinBedrooms:  1,
		MaxBedrooms:  8,
		MinBathrooms: 1,
		MaxBathrooms: 6,
	}
}

// ServiceSnapshot freezes the catalog prices the moment the customer picks a
// service, so a catalog price change mid-wizard cannot skew the quote.
type ServiceSnapshot struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	BasePrice     Money     `json:"base_price"`
	BedroomPrice  Money     `json:"bedroom_price"`
	BathroomPrice Money     `json:"bathroom_price"`
}

type ExtraSelection struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    Money     `json:"price"`
	Quantity int32     `json:"quantity"`
}

type CleanerSnapshot struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	YearsExperience int32     `json:"years_experience"`
}

// Selection is the full in-progress wizard state for one customer session.
// It is the source of truth while the wizard runs; the draft row in Postgres
// is a best-effort mirror updated at step boundaries.
type Selection struct {
	DraftID uuid.UUID `json:"draft_id"`
	Step    Step      `json:"step"`

	Service   *ServiceSnapshot `json:"service,omitempty"`
	Bedrooms  int32            `json:"bedrooms"`
	Bathrooms int32            `json:"bathrooms"`

	RegionID *uuid.UUID `json:"region_id,omitempty"`
	SuburbID *uuid.UUID `json:"suburb_id,omitempty"`
	Address  string     `json:"address"`

	Extras              []ExtraSelection `json:"extras"`
	SpecialInstructions string           `json:"special_instructions"`

	Date      string           `json:"date"` // YYYY-MM-DD
	Time      string           `json:"time"` // HH:MM, 24h
	Frequency Frequency        `json:"frequency"`
	Cleaner   *CleanerSnapshot `json:"cleaner,omitempty"`

	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

// NewSelection returns the initial wizard state mirroring the defaults the
// booking form opens with.
func NewSelection(draftID uuid.UUID) *Selection {
	return &Selection{
		DraftID:   draftID,
		Step:      StepService,
		Bedrooms:  2,
		Bathrooms: 1,
		Extras:    []ExtraSelection{},
		Frequency: FrequencyOnceOff,
	}
}

func (s *Selection) SetService(svc ServiceSnapshot) {
	s.Service = &svc
	// Extras belong to a service; a service change invalidates them.
	s.Extras = []ExtraSelection{}
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Selection) SetBedrooms(count int32, lim Limits) {
	s.Bedrooms = clamp(count, lim.MinBedrooms, lim.MaxBedrooms)
}

func (s *Selection) SetBathrooms(count int32, lim Limits) {
	s.Bathrooms = clamp(count, lim.MinBathrooms, lim.MaxBathrooms)
}

// ToggleExtra adds an absent extra with quantity 1 and removes a present one.
// The extras selection is a set, not a multiset.
func (s *Selection) ToggleExtra(extra ExtraSelection) {
	for i, e := range s.Extras {
		if e.ID == extra.ID {
			s.Extras = append(s.Extras[:i], s.Extras[i+1:]...)
			return
		}
	}
	extra.Quantity = 1
	s.Extras = append(s.Extras, extra)
}

func (s *Selection) HasExtra(id uuid.UUID) bool {
	for _, e := range s.Extras {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (s *Selection) SetSpecialInstructions(instructions string) {
	s.SpecialInstructions = instructions
}

func (s *Selection) SetSchedule(date, timeOfDay string, freq Frequency) {
	s.Date = date
	s.Time = timeOfDay
	s.Frequency = freq
}

func (s *Selection) SetCleaner(cleaner *CleanerSnapshot) {
	s.Cleaner = cleaner
}

func (s *Selection) SetContact(name, email, phone string) {
	s.ContactName = name
	s.ContactEmail = email
	s.ContactPhone = phone
}

// StartTime combines the date and time fields into a timestamp in loc.
func (s *Selection) StartTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.Time, loc)
}

// Reset returns the selection to its initial defaults, keeping only the
// draft binding.
func (s *Selection) Reset() {
	*s = *NewSelection(s.DraftID)
}

// Summary derives the current quote. Read-only, never a source of truth.
func (s *Selection) Summary(serviceFee Money) Summary {
	return Quote(*s, serviceFee)
}
