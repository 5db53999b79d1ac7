package entity

import (
	"fmt"
	"time"
)

// Weekday is the wire-level weekday name used by the availability rule
// contract ("monday".."sunday"). Typed so rule lookups cannot silently miss
// on a misspelled map key.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every weekday in calendar order, for deterministic
// iteration over weekday-keyed maps.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayFromTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the weekday of a calendar date.
func WeekdayOf(date time.Time) Weekday {
	return weekdayFromTime[date.Weekday()]
}

// ParseWeekday validates a wire-level weekday name.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return w, nil
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}
