package wire

import (
	"decor-booking/internal/adaptor"
	"decor-booking/internal/data/repository"
	"decor-booking/pkg/middleware"
	"decor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Client intake, no account needed
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bookings - Decorator's own booking list
		r.Get("/api/bookings", bookingHandler.GetDecoratorBookings)

		// PUT /api/bookings/{id}/status - Confirm, reject or cancel
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
	})
}
