package usecase

import (
	"context"
	"fmt"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/internal/data/repository"
	"decor-booking/internal/dto/response"
	"decor-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdmissionService decides whether a candidate (decorator, date, time) may
// be accepted. Evaluate is read-only against the stores and performs no
// writes, so it is safe to call speculatively (availability previews)
// without the concurrency guard. The commit path calls EvaluateIn with its
// own transaction so the decision and the insert see one snapshot.
type AdmissionService interface {
	Evaluate(ctx context.Context, decoratorID uuid.UUID, date time.Time, at entity.MinuteOfDay) (*entity.AdmissionDecision, error)
	EvaluateIn(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time, at entity.MinuteOfDay) (*entity.AdmissionDecision, error)
	CheckDate(ctx context.Context, decoratorID, dateStr, timeStr string) (*response.AvailabilityCheckResponse, error)
}

type admissionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdmissionService(repo *repository.Repository, log *zap.Logger) AdmissionService {
	return &admissionService{
		repo: repo,
		log:  log.With(zap.String("service", "admission")),
	}
}

func (s *admissionService) Evaluate(ctx context.Context, decoratorID uuid.UUID, date time.Time, at entity.MinuteOfDay) (*entity.AdmissionDecision, error) {
	return s.EvaluateIn(ctx, nil, decoratorID, date, at)
}

// EvaluateIn runs the admission checks in order, short-circuiting on the
// first failure:
//
//  1. blocked date (exact, or month+day for recurring entries)
//  2. weekday availability
//  3. time-window membership (windows on a weekday are OR'd)
//  4. daily capacity
//  5. interval spacing (a gap exactly equal to the interval is allowed)
//
// A decorator with no availability rule at all is permissive: only the
// blocked-date check applies. That mirrors how unconfigured decorators have
// always behaved and is deliberate policy, not a gap.
func (s *admissionService) EvaluateIn(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time, at entity.MinuteOfDay) (*entity.AdmissionDecision, error) {
	now := time.Now()

	blocked, err := s.repo.BlockedDate.FindMatching(ctx, q, decoratorID, date)
	if err != nil {
		return nil, fmt.Errorf("evaluate blocked dates: %w", err)
	}
	if blocked != nil {
		decision := entity.Rejected(entity.ReasonBlockedDate, now)
		decision.BlockedBy = blocked
		return decision, nil
	}

	rule, err := s.repo.AvailabilityRule.GetByDecorator(ctx, q, decoratorID)
	if err != nil {
		return nil, fmt.Errorf("evaluate availability rule: %w", err)
	}
	if rule == nil {
		return entity.Allowed(now), nil
	}

	weekday := entity.WeekdayOf(date)
	if !rule.DayAvailable(weekday) {
		return entity.Rejected(entity.ReasonDayUnavailable, now), nil
	}

	// A weekday with no configured windows carries no time restriction.
	if windows := rule.WindowsFor(weekday); len(windows) > 0 {
		inWindow := false
		for _, w := range windows {
			if w.Contains(at) {
				inWindow = true
				break
			}
		}
		if !inWindow {
			return entity.Rejected(entity.ReasonTimeOutsideWindow, now), nil
		}
	}

	count, err := s.repo.Booking.CountActive(ctx, q, decoratorID, date)
	if err != nil {
		return nil, fmt.Errorf("evaluate daily capacity: %w", err)
	}
	if count >= rule.MaxDailyBookings {
		return entity.Rejected(entity.ReasonDailyLimitReached, now), nil
	}

	if interval := rule.IntervalFor(weekday); interval > 0 {
		times, err := s.repo.Booking.ListActiveTimes(ctx, q, decoratorID, date)
		if err != nil {
			return nil, fmt.Errorf("evaluate interval spacing: %w", err)
		}
		for _, existing := range times {
			// Strictly-less-than: a gap of exactly the interval is fine.
			if at.DiffAbs(existing) < interval {
				return entity.Rejected(entity.ReasonIntervalViolation, now), nil
			}
		}
	}

	return entity.Allowed(now), nil
}

// CheckDate is the availability preview used by client UIs. It runs the
// engine without the concurrency guard and renders the legacy response
// shape the external contract fixes.
func (s *admissionService) CheckDate(ctx context.Context, decoratorID, dateStr, timeStr string) (*response.AvailabilityCheckResponse, error) {
	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	date, err := parseEventDate(dateStr)
	if err != nil {
		return nil, err
	}

	at, err := entity.ParseMinuteOfDay(timeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	decorator, err := s.repo.Decorator.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check decorator: %w", err)
	}
	if decorator == nil {
		return nil, fmt.Errorf("%w: decorator %s", ErrNotFound, decoratorID)
	}

	decision, err := s.Evaluate(ctx, id, date, at)
	if err != nil {
		s.log.Error("Availability check failed",
			zap.Error(err),
			zap.String("decorator_id", decoratorID),
			zap.String("date", dateStr),
		)
		return nil, fmt.Errorf("availability check: %w", err)
	}

	return response.DecisionToCheckResponse(decision), nil
}

// parseEventDate parses "2006-01-02" and rejects dates already in the past.
// Past candidates never reach the engine.
func parseEventDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q: expected YYYY-MM-DD", ErrValidation, s)
	}

	if date.Before(entity.DateOnly(time.Now())) {
		return time.Time{}, fmt.Errorf("%w: date %s is in the past", ErrValidation, s)
	}

	return date, nil
}
