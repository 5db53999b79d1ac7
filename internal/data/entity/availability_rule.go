package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeWindow is one bookable span on a weekday. A weekday may carry several
// windows; a candidate time only needs to fall inside one of them.
type TimeWindow struct {
	Day   Weekday     `json:"day"`
	Start MinuteOfDay `json:"start"`
	End   MinuteOfDay `json:"end"`
}

// Contains reports whether t falls inside the window (bounds inclusive).
func (w TimeWindow) Contains(t MinuteOfDay) bool {
	return t >= w.Start && t <= w.End
}

// AvailabilityRule is a decorator's full weekly availability configuration.
// There is at most one active rule per decorator; replacing it is a full
// overwrite, never a merge.
type AvailabilityRule struct {
	DecoratorID uuid.UUID
	// AvailableDays is the set of weekdays that accept bookings at all.
	AvailableDays []Weekday
	// TimeWindows lists bookable spans per weekday, OR'd within a day.
	TimeWindows []TimeWindow
	// ServiceIntervals is the minimum spacing between two bookings on the
	// same date, in minutes, keyed by weekday.
	ServiceIntervals map[Weekday]int
	// DefaultIntervalMin applies to weekdays absent from ServiceIntervals.
	// Zero means no spacing constraint.
	DefaultIntervalMin int
	// MaxDailyBookings caps active bookings per calendar date (1-10).
	MaxDailyBookings int
	UpdatedAt        time.Time
}

func (r *AvailabilityRule) DayAvailable(d Weekday) bool {
	for _, day := range r.AvailableDays {
		if day == d {
			return true
		}
	}
	return false
}

func (r *AvailabilityRule) WindowsFor(d Weekday) []TimeWindow {
	var windows []TimeWindow
	for _, w := range r.TimeWindows {
		if w.Day == d {
			windows = append(windows, w)
		}
	}
	return windows
}

// IntervalFor returns the spacing requirement for a weekday, in minutes.
func (r *AvailabilityRule) IntervalFor(d Weekday) int {
	if iv, ok := r.ServiceIntervals[d]; ok {
		return iv
	}
	return r.DefaultIntervalMin
}
