package booking

import "errors"

var (
	ErrUnknownStep        = errors.New("unknown wizard step")
	ErrServiceRequired    = errors.New("a service must be selected")
	ErrPropertyIncomplete = errors.New("region, suburb and address are required")
	ErrScheduleIncomplete = errors.New("date and time are required")
	ErrContactIncomplete  = errors.New("contact name, email and phone are required")
)

// Step is the wizard position. Steps are strictly ordered; Advance validates
// the step being left, Retreat never does.
type Step int

const (
	StepService Step = iota
	StepProperty
	StepSchedule
	StepExtras
	StepReview
)

var stepNames = [...]string{"service", "property", "schedule", "extras", "review"}

func (s Step) String() string {
	if s < StepService || s > StepReview {
		return "unknown"
	}
	return stepNames[s]
}

func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, ErrUnknownStep
}

func (s Step) IsFirst() bool { return s == StepService }
func (s Step) IsLast() bool  { return s == StepReview }

// ValidateStep checks the per-step completion predicate against the selection.
func ValidateStep(step Step, sel *Selection) error {
	switch step {
	case StepService:
		if sel.Service == nil {
			return ErrServiceRequired
		}
	case StepProperty:
		if sel.RegionID == nil || sel.SuburbID == nil || sel.Address == "" {
			return ErrPropertyIncomplete
		}
	case StepSchedule:
		if sel.Date == "" || sel.Time == "" {
			return ErrScheduleIncomplete
		}
	case StepExtras:
		// Extras are optional; the step is always complete.
	case StepReview:
		if sel.ContactName == "" || sel.ContactEmail == "" || sel.ContactPhone == "" {
			return ErrContactIncomplete
		}
	default:
		return ErrUnknownStep
	}
	return nil
}

// Advance moves the selection to the next step after validating the current
// one. Advancing from the last step is a no-op; review completion is a
// separate operation.
func Advance(sel *Selection) error {
	if err := ValidateStep(sel.Step, sel); err != nil {
		return err
	}
	if !sel.Step.IsLast() {
		sel.Step++
	}
	return nil
}

// Retreat moves one step back unconditionally, flooring at the first step.
func Retreat(sel *Selection) {
	if !sel.Step.IsFirst() {
		sel.Step--
	}
}
