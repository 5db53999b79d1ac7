package usecase

import (
	"decor-booking/internal/data/repository"
	"decor-booking/pkg/database"
	"decor-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Availability AvailabilityService
	Admission    AdmissionService
	Booking      BookingService
}

func NewService(repo *repository.Repository, db database.PgxIface, config *utils.Config, log *zap.Logger) *Service {
	admission := NewAdmissionService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Availability: NewAvailabilityService(repo, log),
		Admission:    admission,
		Booking:      NewBookingService(repo, db, admission, config, log),
	}
}
