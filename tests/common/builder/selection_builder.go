//go:build unit || e2e

package builder

import (
	"shalean-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

// SelectionBuilder assembles a wizard selection at an arbitrary step. The
// defaults describe a standard clean that has progressed through review.
type SelectionBuilder struct {
	sel *booking.Selection
}

func NewSelectionBuilder() *SelectionBuilder {
	sel := booking.NewSelection(uuid.New())
	sel.SetService(NewServiceSnapshot())

	regionID := uuid.New()
	suburbID := uuid.New()
	sel.RegionID = &regionID
	sel.SuburbID = &suburbID
	sel.Address = "12 Adeola Odeku St"

	sel.SetSchedule("2026-09-15", "09:00", booking.FrequencyOnceOff)
	sel.SetContact("Ada Obi", "ada@example.com", "+2348012345678")
	sel.Step = booking.StepReview

	return &SelectionBuilder{sel: sel}
}

func NewServiceSnapshot() booking.ServiceSnapshot {
	return booking.ServiceSnapshot{
		ID:            uuid.New(),
		Slug:          "standard-cleaning",
		Name:          "Standard Cleaning",
		BasePrice:     booking.NewMoney(1500000),
		BedroomPrice:  booking.NewMoney(250000),
		BathroomPrice: booking.NewMoney(200000),
	}
}

func NewExtraSelection(name string, price int64) booking.ExtraSelection {
	return booking.ExtraSelection{
		ID:       uuid.New(),
		Name:     name,
		Price:    booking.NewMoney(price),
		Quantity: 1,
	}
}

func (b *SelectionBuilder) WithStep(step booking.Step) *SelectionBuilder {
	b.sel.Step = step
	return b
}

func (b *SelectionBuilder) WithoutService() *SelectionBuilder {
	b.sel.Service = nil
	return b
}

func (b *SelectionBuilder) WithService(svc booking.ServiceSnapshot) *SelectionBuilder {
	b.sel.SetService(svc)
	return b
}

func (b *SelectionBuilder) WithRooms(bedrooms, bathrooms int32) *SelectionBuilder {
	b.sel.Bedrooms = bedrooms
	b.sel.Bathrooms = bathrooms
	return b
}

func (b *SelectionBuilder) WithFrequency(freq booking.Frequency) *SelectionBuilder {
	b.sel.Frequency = freq
	return b
}

func (b *SelectionBuilder) WithExtras(extras ...booking.ExtraSelection) *SelectionBuilder {
	b.sel.Extras = extras
	return b
}

func (b *SelectionBuilder) WithoutContact() *SelectionBuilder {
	b.sel.ContactName = ""
	b.sel.ContactEmail = ""
	b.sel.ContactPhone = ""
	return b
}

func (b *SelectionBuilder) Build() *booking.Selection {
	return b.sel
}
