package response

import (
	"time"

	"decor-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	DecoratorID string               `json:"decorator_id"`
	ClientName  string               `json:"client_name"`
	ClientEmail string               `json:"client_email"`
	ServiceType *string              `json:"service_type,omitempty"`
	EventDate   string               `json:"event_date"`
	EventTime   string               `json:"event_time"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AdmissionOutcome is the intake result for one booking attempt. Accepted
// carries the committed booking; a rejection carries the reason code and
// no booking, and is still a 2xx-shaped payload at this layer.
type AdmissionOutcome struct {
	Accepted bool             `json:"accepted"`
	Reason   string           `json:"reason,omitempty"`
	Booking  *BookingResponse `json:"booking,omitempty"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		DecoratorID: booking.DecoratorID.String(),
		ClientName:  booking.ClientName,
		ClientEmail: booking.ClientEmail,
		ServiceType: booking.ServiceType,
		EventDate:   booking.EventDate.Format("2006-01-02"),
		EventTime:   booking.EventTime.String(),
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}

func NewAdmissionOutcome(decision *entity.AdmissionDecision, booking *entity.Booking) *AdmissionOutcome {
	outcome := &AdmissionOutcome{
		Accepted: decision.Allowed,
		Reason:   string(decision.Reason),
	}

	if booking != nil {
		resp := BookingToResponse(booking)
		outcome.Booking = &resp
	}

	return outcome
}
