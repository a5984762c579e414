//go:build unit

package booking_test

import (
	"testing"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	for _, name := range []string{"service", "property", "schedule", "extras", "review"} {
		step, err := booking.ParseStep(name)
		require.NoError(t, err)
		assert.Equal(t, name, step.String())
	}

	_, err := booking.ParseStep("payment")
	assert.ErrorIs(t, err, booking.ErrUnknownStep)
}

func TestAdvanceValidatesCurrentStep(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*booking.Selection)
		step   booking.Step
		errIs  error
	}{
		{
			name:   "service step requires a service",
			mutate: func(s *booking.Selection) { s.Service = nil },
			step:   booking.StepService,
			errIs:  booking.ErrServiceRequired,
		},
		{
			name:   "property step requires an address",
			mutate: func(s *booking.Selection) { s.Address = "" },
			step:   booking.StepProperty,
			errIs:  booking.ErrPropertyIncomplete,
		},
		{
			name:   "property step requires a suburb",
			mutate: func(s *booking.Selection) { s.SuburbID = nil },
			step:   booking.StepProperty,
			errIs:  booking.ErrPropertyIncomplete,
		},
		{
			name:   "schedule step requires date and time",
			mutate: func(s *booking.Selection) { s.Date = "" },
			step:   booking.StepSchedule,
			errIs:  booking.ErrScheduleIncomplete,
		},
		{
			name:   "review step requires contact details",
			mutate: func(s *booking.Selection) { s.ContactEmail = "" },
			step:   booking.StepReview,
			errIs:  booking.ErrContactIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := builder.NewSelectionBuilder().WithStep(tt.step).Build()
			tt.mutate(sel)

			err := booking.Advance(sel)

			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.step, sel.Step, "failed advance must not move the step")
		})
	}
}

func TestAdvanceWalksAllSteps(t *testing.T) {
	sel := builder.NewSelectionBuilder().WithStep(booking.StepService).Build()

	order := []booking.Step{
		booking.StepProperty, booking.StepSchedule, booking.StepExtras, booking.StepReview,
	}
	for _, want := range order {
		require.NoError(t, booking.Advance(sel))
		assert.Equal(t, want, sel.Step)
	}

	// Advancing past review validates but stays put.
	require.NoError(t, booking.Advance(sel))
	assert.Equal(t, booking.StepReview, sel.Step)
}

func TestExtrasStepIsOptional(t *testing.T) {
	sel := booking.NewSelection(uuid.New())
	sel.Step = booking.StepExtras

	assert.NoError(t, booking.Advance(sel))
	assert.Equal(t, booking.StepReview, sel.Step)
}

func TestRetreat(t *testing.T) {
	sel := builder.NewSelectionBuilder().WithStep(booking.StepSchedule).Build()

	booking.Retreat(sel)
	assert.Equal(t, booking.StepProperty, sel.Step)

	// Retreat never validates and floors at the first step.
	sel.Service = nil
	booking.Retreat(sel)
	booking.Retreat(sel)
	assert.Equal(t, booking.StepService, sel.Step)
}
