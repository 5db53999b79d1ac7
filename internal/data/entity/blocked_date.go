package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockedDate excludes a calendar date from a decorator's availability.
// Recurring entries repeat every year on the same month and day until
// deleted; a recurring Feb 29 therefore only fires in leap years.
type BlockedDate struct {
	BaseSimple
	DecoratorID uuid.UUID `db:"decorator_id"`
	Date        time.Time `db:"blocked_date"` // calendar date, time part zero
	Reason      string    `db:"reason"`
	IsRecurring bool      `db:"is_recurring"`
}

// Matches reports whether the entry blocks the given calendar date.
// Comparison is calendar-aware (year/month/day components), not string-based.
func (b *BlockedDate) Matches(date time.Time) bool {
	by, bm, bd := b.Date.Date()
	y, m, d := date.Date()

	if b.IsRecurring {
		return bm == m && bd == d
	}
	return by == y && bm == m && bd == d
}

// DateOnly truncates a timestamp to its calendar date in UTC. All booking
// dates are stored and compared in this form.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
