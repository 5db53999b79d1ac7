package usecase

import (
	"context"
	"fmt"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/internal/data/repository"
	"decor-booking/internal/dto/request"
	"decor-booking/internal/dto/response"
	"decor-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService is the settings surface: decorators manage their
// weekly rule and blocked dates here. Writes take effect for future
// evaluations immediately and never touch bookings already in the ledger.
type AvailabilityService interface {
	GetRule(ctx context.Context, decoratorID string) (*response.AvailabilityRuleResponse, error)
	ReplaceRule(ctx context.Context, decoratorID string, req *request.ReplaceAvailabilityRuleRequest) (*response.AvailabilityRuleResponse, error)
	DeleteRule(ctx context.Context, decoratorID string) error

	ListBlockedDates(ctx context.Context, decoratorID string) ([]response.BlockedDateResponse, error)
	AddBlockedDate(ctx context.Context, decoratorID string, req *request.AddBlockedDateRequest) (*response.BlockedDateResponse, error)
	RemoveBlockedDate(ctx context.Context, decoratorID, blockedDateID string) error
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetRule(ctx context.Context, decoratorID string) (*response.AvailabilityRuleResponse, error) {
	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	rule, err := s.repo.AvailabilityRule.GetByDecorator(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("get availability rule: %w", err)
	}
	if rule == nil {
		return nil, fmt.Errorf("%w: no availability rule for decorator %s", ErrNotFound, decoratorID)
	}

	return response.RuleToResponse(rule), nil
}

// ReplaceRule overwrites the decorator's whole rule set. Validation happens
// up front and a violation writes nothing.
func (s *availabilityService) ReplaceRule(ctx context.Context, decoratorID string, req *request.ReplaceAvailabilityRuleRequest) (*response.AvailabilityRuleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Replace rule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	rule, err := buildRule(id, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AvailabilityRule.Replace(ctx, rule); err != nil {
		return nil, fmt.Errorf("replace availability rule: %w", err)
	}

	s.log.Info("Availability rule replaced",
		zap.String("decorator_id", decoratorID),
		zap.Int("available_days", len(rule.AvailableDays)),
		zap.Int("time_windows", len(rule.TimeWindows)),
		zap.Int("max_daily_bookings", rule.MaxDailyBookings),
	)

	return response.RuleToResponse(rule), nil
}

// DeleteRule removes the decorator's rule entirely, returning them to the
// permissive unconfigured state (only blocked dates apply afterwards).
func (s *availabilityService) DeleteRule(ctx context.Context, decoratorID string) error {
	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	rule, err := s.repo.AvailabilityRule.GetByDecorator(ctx, nil, id)
	if err != nil {
		return fmt.Errorf("get availability rule: %w", err)
	}
	if rule == nil {
		return fmt.Errorf("%w: no availability rule for decorator %s", ErrNotFound, decoratorID)
	}

	if err := s.repo.AvailabilityRule.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete availability rule: %w", err)
	}

	s.log.Info("Availability rule deleted", zap.String("decorator_id", decoratorID))

	return nil
}

// buildRule converts the wire rule into the typed entity, normalizing every
// interval to minutes and checking the domain bounds the struct tags can't
// express.
func buildRule(decoratorID uuid.UUID, req *request.ReplaceAvailabilityRuleRequest) (*entity.AvailabilityRule, error) {
	days := make([]entity.Weekday, 0, len(req.AvailableDays))
	seen := make(map[entity.Weekday]bool)
	for _, d := range req.AvailableDays {
		day, err := entity.ParseWeekday(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	windows := make([]entity.TimeWindow, 0, len(req.TimeSchedules))
	for _, ts := range req.TimeSchedules {
		day, err := entity.ParseWeekday(ts.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		start, err := entity.ParseMinuteOfDay(ts.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		end, err := entity.ParseMinuteOfDay(ts.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		if start >= end {
			return nil, fmt.Errorf("%w: window %s-%s on %s must start before it ends",
				ErrValidation, ts.StartTime, ts.EndTime, ts.Day)
		}
		windows = append(windows, entity.TimeWindow{Day: day, Start: start, End: end})
	}

	intervals := make(map[entity.Weekday]int, len(req.ServiceIntervals))
	for _, si := range req.ServiceIntervals {
		day, err := entity.ParseWeekday(si.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		minutes, err := normalizeInterval(si.Interval, si.Unit)
		if err != nil {
			return nil, err
		}
		intervals[day] = minutes
	}

	defaultInterval := 0
	if req.ServiceInterval != nil {
		minutes, err := normalizeInterval(req.ServiceInterval.Interval, req.ServiceInterval.Unit)
		if err != nil {
			return nil, err
		}
		defaultInterval = minutes
	}

	return &entity.AvailabilityRule{
		DecoratorID:        decoratorID,
		AvailableDays:      days,
		TimeWindows:        windows,
		ServiceIntervals:   intervals,
		DefaultIntervalMin: defaultInterval,
		MaxDailyBookings:   req.MaxDailyServices,
		UpdatedAt:          time.Now(),
	}, nil
}

// normalizeInterval converts an interval to minutes. A single unit
// internally keeps the hours/minutes branches of the wire contract from
// diverging.
func normalizeInterval(value int, unit string) (int, error) {
	minutes := value
	if unit == "hours" {
		minutes = value * 60
	}

	if minutes < 0 || minutes > entity.MinutesPerDay {
		return 0, fmt.Errorf("%w: interval %d %s is outside 0-24 hours", ErrValidation, value, unit)
	}

	return minutes, nil
}

func (s *availabilityService) ListBlockedDates(ctx context.Context, decoratorID string) ([]response.BlockedDateResponse, error) {
	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	blocked, err := s.repo.BlockedDate.ListByDecorator(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list blocked dates: %w", err)
	}

	responses := make([]response.BlockedDateResponse, len(blocked))
	for i, b := range blocked {
		responses[i] = response.BlockedDateToResponse(b)
	}

	return responses, nil
}

func (s *availabilityService) AddBlockedDate(ctx context.Context, decoratorID string, req *request.AddBlockedDateRequest) (*response.BlockedDateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add blocked date validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	date, err := time.Parse("2006-01-02", req.BlockedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q: expected YYYY-MM-DD", ErrValidation, req.BlockedDate)
	}

	// A one-off block in the past would never match anything. Recurring
	// entries are exempt: their month+day applies to future years.
	if !req.IsRecurring && date.Before(entity.DateOnly(time.Now())) {
		return nil, fmt.Errorf("%w: blocked date %s is in the past", ErrValidation, req.BlockedDate)
	}

	blocked := &entity.BlockedDate{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		DecoratorID: id,
		Date:        entity.DateOnly(date),
		Reason:      req.Reason,
		IsRecurring: req.IsRecurring,
	}

	if err := s.repo.BlockedDate.Create(ctx, blocked); err != nil {
		return nil, fmt.Errorf("add blocked date: %w", err)
	}

	s.log.Info("Blocked date added",
		zap.String("decorator_id", decoratorID),
		zap.String("date", req.BlockedDate),
		zap.Bool("recurring", req.IsRecurring),
	)

	resp := response.BlockedDateToResponse(blocked)
	return &resp, nil
}

func (s *availabilityService) RemoveBlockedDate(ctx context.Context, decoratorID, blockedDateID string) error {
	decoratorUUID, err := uuid.Parse(decoratorID)
	if err != nil {
		return fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	id, err := uuid.Parse(blockedDateID)
	if err != nil {
		return fmt.Errorf("%w: invalid blocked date ID %q", ErrValidation, blockedDateID)
	}

	if err := s.repo.BlockedDate.Delete(ctx, id, decoratorUUID); err != nil {
		return fmt.Errorf("remove blocked date: %w", err)
	}

	s.log.Info("Blocked date removed",
		zap.String("decorator_id", decoratorID),
		zap.String("blocked_date_id", blockedDateID),
	)

	return nil
}
