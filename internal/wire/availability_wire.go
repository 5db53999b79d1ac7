package wire

import (
	"decor-booking/internal/adaptor"
	"decor-booking/internal/data/repository"
	"decor-booking/pkg/middleware"
	"decor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAvailability(
	r chi.Router,
	availabilityHandler *adaptor.AvailabilityHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/availability - Current weekly rule
		r.Get("/api/availability", availabilityHandler.GetRule)

		// PUT /api/availability - Replace weekly rule (full overwrite)
		r.Put("/api/availability", availabilityHandler.ReplaceRule)

		// DELETE /api/availability - Back to the unconfigured permissive state
		r.Delete("/api/availability", availabilityHandler.DeleteRule)

		// Blocked date management
		r.Get("/api/blocked-dates", availabilityHandler.ListBlockedDates)
		r.Post("/api/blocked-dates", availabilityHandler.AddBlockedDate)
		r.Delete("/api/blocked-dates/{id}", availabilityHandler.RemoveBlockedDate)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/decorators/{id}/availability/check - Client-facing preview
	r.Get("/api/decorators/{id}/availability/check", availabilityHandler.CheckAvailability)
}
