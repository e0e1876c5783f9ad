package service

import (
	"reflect"
	"testing"
)

func TestSlots_FullHourWindow(t *testing.T) {
	en := NewEnumerator()

	got := en.Slots("09:00", "18:00")
	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots(09:00, 18:00) = %v, want %v", got, want)
	}
}

func TestSlots_EndNotReachableByHourSteps(t *testing.T) {
	en := NewEnumerator()

	// 09:30 is never reached by integral hour steps from 09:00, and the
	// next candidate (10:00) exceeds the end, so only the start is emitted.
	got := en.Slots("09:00", "09:30")
	want := []string{"09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots(09:00, 09:30) = %v, want %v", got, want)
	}
}

func TestSlots_EndReachedExactly(t *testing.T) {
	en := NewEnumerator()

	got := en.Slots("10:00", "12:00")
	want := []string{"10:00", "11:00", "12:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots(10:00, 12:00) = %v, want %v", got, want)
	}
}

func TestSlots_StartEqualsEnd(t *testing.T) {
	en := NewEnumerator()

	got := en.Slots("14:00", "14:00")
	want := []string{"14:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots(14:00, 14:00) = %v, want %v", got, want)
	}
}

func TestSlots_MinuteComponentPreserved(t *testing.T) {
	en := NewEnumerator()

	// Hour steps keep the start's minute component.
	got := en.Slots("09:15", "11:30")
	want := []string{"09:15", "10:15", "11:15"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots(09:15, 11:30) = %v, want %v", got, want)
	}
}

func TestSlots_HalfHourStep(t *testing.T) {
	en := &Enumerator{StepMinutes: 30}

	got := en.Slots("10:00", "12:00")
	want := []string{"10:00", "10:30", "11:00", "11:30", "12:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slots(10:00, 12:00) with 30m step = %v, want %v", got, want)
	}
}

func TestSlots_StartAfterEnd(t *testing.T) {
	en := NewEnumerator()

	if got := en.Slots("18:00", "09:00"); len(got) != 0 {
		t.Errorf("Slots(18:00, 09:00) = %v, want empty", got)
	}
}

func TestSlots_InvalidLabels(t *testing.T) {
	en := NewEnumerator()

	if got := en.Slots("nine", "18:00"); got != nil {
		t.Errorf("Slots(nine, 18:00) = %v, want nil", got)
	}
	if got := en.Slots("09:00", "25:00"); got != nil {
		t.Errorf("Slots(09:00, 25:00) = %v, want nil", got)
	}
}

func TestSlots_RejectsSingleDigitHours(t *testing.T) {
	en := NewEnumerator()

	// "9:30" parses as a clock value but compares lexicographically
	// greater than any zero-padded label the loop generates, so it must
	// be rejected up front instead of enumerated against.
	if got := en.Slots("09:00", "9:30"); got != nil {
		t.Errorf("Slots(09:00, 9:30) = %v, want nil", got)
	}
	if got := en.Slots("9:00", "18:00"); got != nil {
		t.Errorf("Slots(9:00, 18:00) = %v, want nil", got)
	}
}

func TestSlots_Restartable(t *testing.T) {
	en := NewEnumerator()

	first := en.Slots("09:00", "18:00")
	second := en.Slots("09:00", "18:00")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated enumeration differs: %v vs %v", first, second)
	}
}

func TestDates_SingleDay(t *testing.T) {
	en := NewEnumerator()

	got := en.Dates("2026-03-10", "2026-03-10")
	want := []string{"2026-03-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates single day = %v, want %v", got, want)
	}
}

func TestDates_CrossesMonthBoundary(t *testing.T) {
	en := NewEnumerator()

	got := en.Dates("2026-01-30", "2026-02-02")
	want := []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates across month = %v, want %v", got, want)
	}
}

func TestDates_StartAfterEnd(t *testing.T) {
	en := NewEnumerator()

	if got := en.Dates("2026-03-11", "2026-03-10"); len(got) != 0 {
		t.Errorf("Dates(start > end) = %v, want empty", got)
	}
}

func TestDates_InvalidInput(t *testing.T) {
	en := NewEnumerator()

	if got := en.Dates("March 10", "2026-03-10"); got != nil {
		t.Errorf("Dates with invalid start = %v, want nil", got)
	}
}
