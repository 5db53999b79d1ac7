package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the states that count toward the daily cap and the
// interval spacing checks. Cancelled and rejected bookings stop counting
// immediately.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	BaseNoDelete
	DecoratorID uuid.UUID     `db:"decorator_id"`
	ClientName  string        `db:"client_name"`
	ClientEmail string        `db:"client_email"`
	ServiceType *string       `db:"service_type"`
	EventDate   time.Time     `db:"event_date"` // calendar date, time part zero
	EventTime   MinuteOfDay   `db:"event_time"`
	Status      BookingStatus `db:"status"`
}

func (b *Booking) Active() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
