package booking

import "errors"

var ErrInvalidFrequency = errors.New("invalid cleaning frequency")

// Frequency is the recurrence cadence chosen on the schedule step.
type Frequency string

const (
	FrequencyOnceOff  Frequency = "once-off"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
)

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOnceOff, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// DiscountPercent is the fixed frequency discount table.
func (f Frequency) DiscountPercent() int64 {
	switch f {
	case FrequencyWeekly:
		return 15
	case FrequencyBiWeekly:
		return 10
	case FrequencyMonthly:
		return 5
	default:
		return 0
	}
}

func NewFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.IsValid() {
		return "", ErrInvalidFrequency
	}
	return f, nil
}
