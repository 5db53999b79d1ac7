package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"decor-booking/internal/dto/request"
	"decor-booking/internal/usecase"
	"decor-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityService
	admission    usecase.AdmissionService
	log          *zap.Logger
}

func NewAvailabilityHandler(
	availability usecase.AvailabilityService,
	admission usecase.AdmissionService,
	log *zap.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		admission:    admission,
		log:          log.With(zap.String("handler", "availability")),
	}
}

// GetRule handles GET /api/availability (protected)
func (h *AvailabilityHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	decoratorID, ok := utils.GetDecoratorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rule, err := h.availability.GetRule(r.Context(), decoratorID.String())
	if err != nil {
		h.handleServiceError(w, err, "get availability rule")
		return
	}

	utils.ResponseSuccess(w, "success", rule)
}

// ReplaceRule handles PUT /api/availability (protected)
func (h *AvailabilityHandler) ReplaceRule(w http.ResponseWriter, r *http.Request) {
	decoratorID, ok := utils.GetDecoratorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReplaceAvailabilityRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rule, err := h.availability.ReplaceRule(r.Context(), decoratorID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "replace availability rule")
		return
	}

	utils.ResponseSuccess(w, "Availability updated", rule)
}

// DeleteRule handles DELETE /api/availability (protected)
func (h *AvailabilityHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	decoratorID, ok := utils.GetDecoratorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.availability.DeleteRule(r.Context(), decoratorID.String()); err != nil {
		h.handleServiceError(w, err, "delete availability rule")
		return
	}

	utils.ResponseSuccess(w, "Availability rule removed", nil)
}

// ListBlockedDates handles GET /api/blocked-dates (protected)
func (h *AvailabilityHandler) ListBlockedDates(w http.ResponseWriter, r *http.Request) {
	decoratorID, ok := utils.GetDecoratorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	blocked, err := h.availability.ListBlockedDates(r.Context(), decoratorID.String())
	if err != nil {
		h.handleServiceError(w, err, "list blocked dates")
		return
	}

	utils.ResponseSuccess(w, "success", blocked)
}

// AddBlockedDate handles POST /api/blocked-dates (protected)
func (h *AvailabilityHandler) AddBlockedDate(w http.ResponseWriter, r *http.Request) {
	decoratorID, ok := utils.GetDecoratorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddBlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	blocked, err := h.availability.AddBlockedDate(r.Context(), decoratorID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add blocked date")
		return
	}

	utils.ResponseCreated(w, "Blocked date added", blocked)
}

// RemoveBlockedDate handles DELETE /api/blocked-dates/{id} (protected)
func (h *AvailabilityHandler) RemoveBlockedDate(w http.ResponseWriter, r *http.Request) {
	decoratorID, ok := utils.GetDecoratorIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Blocked date ID is required", nil)
		return
	}

	if err := h.availability.RemoveBlockedDate(r.Context(), decoratorID.String(), id); err != nil {
		h.handleServiceError(w, err, "remove blocked date")
		return
	}

	utils.ResponseSuccess(w, "Blocked date removed", nil)
}

// CheckAvailability handles GET /api/decorators/{id}/availability/check (public).
// The response body is the raw legacy shape, not the standard envelope:
// existing client integrations parse it field by field.
func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	decoratorID := chi.URLParam(r, "id")
	query := r.URL.Query()
	date := query.Get("date")
	timeStr := query.Get("time")

	if date == "" || timeStr == "" {
		utils.ResponseRaw(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "date and time query parameters are required",
		})
		return
	}

	result, err := h.admission.CheckDate(r.Context(), decoratorID, date, timeStr)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			utils.ResponseRaw(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
		case errors.Is(err, usecase.ErrNotFound):
			utils.ResponseRaw(w, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   err.Error(),
			})
		default:
			h.log.Error("Availability check failed", zap.Error(err))
			utils.ResponseRaw(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "internal server error",
			})
		}
		return
	}

	utils.ResponseRaw(w, http.StatusOK, result)
}

// handleServiceError handles different types of errors
func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), err)

	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
