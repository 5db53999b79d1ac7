package repository

import (
	"decor-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Decorator        DecoratorRepository
	Session          SessionRepository
	AvailabilityRule AvailabilityRuleRepository
	BlockedDate      BlockedDateRepository
	Booking          BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Decorator:        NewDecoratorRepository(db, log),
		Session:          NewSessionRepository(db, log),
		AvailabilityRule: NewAvailabilityRuleRepository(db, log),
		BlockedDate:      NewBlockedDateRepository(db, log),
		Booking:          NewBookingRepository(db, log),
	}
}
