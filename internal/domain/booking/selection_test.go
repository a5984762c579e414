//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionDefaults(t *testing.T) {
	sel := booking.NewSelection(uuid.New())

	assert.Equal(t, booking.StepService, sel.Step)
	assert.Equal(t, int32(2), sel.Bedrooms)
	assert.Equal(t, int32(1), sel.Bathrooms)
	assert.Equal(t, booking.FrequencyOnceOff, sel.Frequency)
	assert.Empty(t, sel.Extras)
}

func TestRoomClamping(t *testing.T) {
	lim := booking.DefaultLimits()

	tests := []struct {
		name string
		in   int32
		want int32
	}{
		{"below minimum clamps up", 0, 1},
		{"negative clamps up", -5, 1},
		{"in range unchanged", 4, 4},
		{"above maximum clamps down", 99, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := booking.NewSelection(uuid.New())
			sel.SetBedrooms(tt.in, lim)
			assert.Equal(t, tt.want, sel.Bedrooms)
		})
	}

	sel := booking.NewSelection(uuid.New())
	sel.SetBathrooms(99, lim)
	assert.Equal(t, int32(6), sel.Bathrooms, "bathroom ceiling differs from bedrooms")
}

func TestToggleExtra(t *testing.T) {
	sel := booking.NewSelection(uuid.New())
	extra := builder.NewExtraSelection("Inside Fridge", 300000)

	sel.ToggleExtra(extra)
	require.Len(t, sel.Extras, 1)
	assert.True(t, sel.HasExtra(extra.ID))
	assert.Equal(t, int32(1), sel.Extras[0].Quantity)

	// Toggling again removes, never duplicates.
	sel.ToggleExtra(extra)
	assert.Empty(t, sel.Extras)
	assert.False(t, sel.HasExtra(extra.ID))
}

func TestSetServiceClearsExtras(t *testing.T) {
	sel := builder.NewSelectionBuilder().
		WithExtras(builder.NewExtraSelection("Inside Oven", 350000)).
		Build()
	require.NotEmpty(t, sel.Extras)

	sel.SetService(builder.NewServiceSnapshot())

	assert.Empty(t, sel.Extras, "extras belong to the previous service")
}

func TestStartTime(t *testing.T) {
	sel := booking.NewSelection(uuid.New())
	sel.SetSchedule("2026-09-15", "09:30", booking.FrequencyWeekly)

	loc, err := time.LoadLocation("Africa/Lagos")
	require.NoError(t, err)

	start, err := sel.StartTime(loc)
	require.NoError(t, err)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, 9, int(start.Month()))
	assert.Equal(t, 30, start.Minute())
	assert.Equal(t, loc, start.Location())

	sel.SetSchedule("not-a-date", "09:30", booking.FrequencyWeekly)
	_, err = sel.StartTime(loc)
	assert.Error(t, err)
}

func TestSelectionReset(t *testing.T) {
	sel := builder.NewSelectionBuilder().Build()
	draftID := sel.DraftID
	sel.Reset()

	assert.Equal(t, booking.StepService, sel.Step)
	assert.Nil(t, sel.Service)
	assert.Empty(t, sel.ContactName)
	assert.Equal(t, draftID, sel.DraftID)
}
