package service

import (
	"fmt"
	"time"

	"slotpoll/core/constants"
)

// Enumerator produces the universe of slot labels and calendar dates
// for an event. Both enumerations are pure and restartable.
type Enumerator struct {
	// StepMinutes between consecutive slot labels.
	StepMinutes int
}

// NewEnumerator creates an enumerator with the default one-hour step.
func NewEnumerator() *Enumerator {
	return &Enumerator{
		StepMinutes: constants.DefaultSlotStepMinutes,
	}
}

// Slots emits the ordered slot labels inside one day: begin at start,
// emit while the label is <= end, advance by StepMinutes. The label
// equal to end itself appears only when it is reached by exact steps
// from start; a label past end is never emitted.
func (en *Enumerator) Slots(start, end string) []string {
	step := en.StepMinutes
	if step <= 0 {
		step = constants.DefaultSlotStepMinutes
	}
	if !validClockLabel(start) || !validClockLabel(end) {
		return nil
	}

	slots := []string{}
	current := start
	for current <= end {
		slots = append(slots, current)
		current = addMinutes(current, step)
	}
	return slots
}

// Dates emits every calendar date from start to end inclusive. Dates
// are plain calendar values, no timezone conversion.
func (en *Enumerator) Dates(start, end string) []string {
	from, err := time.Parse(constants.DateLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(constants.DateLayout, end)
	if err != nil {
		return nil
	}

	dates := []string{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateLayout))
	}
	return dates
}

// addMinutes advances an HH:MM label. The hour component is not wrapped
// at 24, so a label past the end of day compares greater than any valid
// end label and terminates the slot loop.
func addMinutes(label string, minutes int) string {
	var h, m int
	if _, err := fmt.Sscanf(label, "%d:%d", &h, &m); err != nil {
		return label
	}
	total := h*60 + m + minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// validClockLabel requires the canonical zero-padded HH:MM form.
// time.Parse alone also accepts "9:30", which compares lexicographically
// greater than every two-digit-hour label and would keep the slot loop
// running forever.
func validClockLabel(label string) bool {
	t, err := time.Parse(constants.ClockLayout, label)
	return err == nil && t.Format(constants.ClockLayout) == label
}
