package entity

import (
	"testing"
	"time"
)

func TestWeekdayOf(t *testing.T) {
	t.Parallel()

	// 2030-01-07 is a Monday.
	monday := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)
	if got := WeekdayOf(monday); got != Monday {
		t.Errorf("WeekdayOf(2030-01-07) = %s, want monday", got)
	}
	if got := WeekdayOf(monday.AddDate(0, 0, 5)); got != Saturday {
		t.Errorf("WeekdayOf(2030-01-12) = %s, want saturday", got)
	}
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	if _, err := ParseWeekday("monday"); err != nil {
		t.Errorf("ParseWeekday(monday): %v", err)
	}
	for _, bad := range []string{"Monday", "mon", "funday", ""} {
		if _, err := ParseWeekday(bad); err == nil {
			t.Errorf("ParseWeekday(%q): expected error", bad)
		}
	}
}

func TestTimeWindowContainsBoundsInclusive(t *testing.T) {
	t.Parallel()

	w := TimeWindow{Day: Monday, Start: 540, End: 1020} // 09:00-17:00

	if !w.Contains(540) {
		t.Error("start bound should be inside the window")
	}
	if !w.Contains(1020) {
		t.Error("end bound should be inside the window")
	}
	if w.Contains(539) || w.Contains(1021) {
		t.Error("times outside the bounds must not be contained")
	}
}

func TestIntervalForFallsBackToDefault(t *testing.T) {
	t.Parallel()

	rule := &AvailabilityRule{
		ServiceIntervals:   map[Weekday]int{Monday: 120},
		DefaultIntervalMin: 60,
	}

	if got := rule.IntervalFor(Monday); got != 120 {
		t.Errorf("IntervalFor(monday) = %d, want 120", got)
	}
	if got := rule.IntervalFor(Tuesday); got != 60 {
		t.Errorf("IntervalFor(tuesday) = %d, want 60", got)
	}
}

func TestWindowsForFiltersByDay(t *testing.T) {
	t.Parallel()

	rule := &AvailabilityRule{
		TimeWindows: []TimeWindow{
			{Day: Monday, Start: 540, End: 720},
			{Day: Monday, Start: 780, End: 1020},
			{Day: Friday, Start: 600, End: 660},
		},
	}

	if got := len(rule.WindowsFor(Monday)); got != 2 {
		t.Errorf("WindowsFor(monday) returned %d windows, want 2", got)
	}
	if got := len(rule.WindowsFor(Sunday)); got != 0 {
		t.Errorf("WindowsFor(sunday) returned %d windows, want 0", got)
	}
}
