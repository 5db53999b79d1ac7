package usecase

import (
	"context"
	"fmt"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/internal/data/repository"
	"decor-booking/internal/dto/request"
	"decor-booking/internal/dto/response"
	"decor-booking/pkg/database"
	"decor-booking/pkg/lock"
	"decor-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingService owns the commit side of admission. AdmitAndCommit is the
// only path that inserts into the bookings ledger: it serializes attempts
// per (decorator, date), evaluates inside a REPEATABLE READ transaction and
// inserts in the same transaction, so concurrent candidates can never
// jointly exceed the daily cap or the spacing interval.
type BookingService interface {
	AdmitAndCommit(ctx context.Context, req *request.CreateBookingRequest) (*response.AdmissionOutcome, error)
	GetDecoratorBookings(ctx context.Context, decoratorID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, decoratorID, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	repo      *repository.Repository
	db        database.PgxIface
	admission AdmissionService
	locks     *lock.KeyedMutex
	lockWait  time.Duration
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	db database.PgxIface,
	admission AdmissionService,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	lockWait := time.Duration(config.Booking.LockWaitSeconds) * time.Second
	if lockWait <= 0 {
		lockWait = 3 * time.Second
	}

	return &bookingService{
		repo:      repo,
		db:        db,
		admission: admission,
		locks:     lock.NewKeyedMutex(),
		lockWait:  lockWait,
		log:       log.With(zap.String("service", "booking")),
	}
}

// admissionKey scopes the critical section. Different decorators and
// different dates never contend with each other.
func admissionKey(decoratorID uuid.UUID, date time.Time) string {
	return decoratorID.String() + "|" + date.Format("2006-01-02")
}

func (s *bookingService) AdmitAndCommit(ctx context.Context, req *request.CreateBookingRequest) (*response.AdmissionOutcome, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	decoratorID, err := uuid.Parse(req.DecoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, req.DecoratorID)
	}

	date, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	eventTime, err := entity.ParseMinuteOfDay(req.EventTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	decorator, err := s.repo.Decorator.FindByID(ctx, decoratorID)
	if err != nil {
		return nil, fmt.Errorf("check decorator: %w", err)
	}
	if decorator == nil {
		return nil, fmt.Errorf("%w: decorator %s", ErrNotFound, req.DecoratorID)
	}

	// Serialize with every other attempt for this decorator and date. A
	// bounded wait: contention past the deadline surfaces as a retryable
	// Busy outcome, never an indefinite block.
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	release, err := s.locks.Acquire(lockCtx, admissionKey(decoratorID, date))
	if err != nil {
		if ctx.Err() != nil {
			// Caller gave up while waiting; nothing was committed.
			return nil, ctx.Err()
		}
		s.log.Warn("Admission lock wait timed out",
			zap.String("decorator_id", req.DecoratorID),
			zap.String("event_date", req.EventDate),
			zap.Duration("lock_wait", s.lockWait),
		)
		return nil, fmt.Errorf("%w: decorator %s on %s", ErrBusy, req.DecoratorID, req.EventDate)
	}
	defer release()

	// Evaluate and insert against one snapshot. Rollback after a commit is
	// a no-op, so the defer covers every early return.
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("begin admission transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	decision, err := s.admission.EvaluateIn(ctx, tx, decoratorID, date, eventTime)
	if err != nil {
		return nil, fmt.Errorf("admit booking: %w", err)
	}

	if !decision.Allowed {
		s.log.Info("Booking rejected",
			zap.String("decorator_id", req.DecoratorID),
			zap.String("event_date", req.EventDate),
			zap.String("event_time", req.EventTime),
			zap.String("reason", string(decision.Reason)),
		)
		return response.NewAdmissionOutcome(decision, nil), nil
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DecoratorID: decoratorID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ServiceType: req.ServiceType,
		EventDate:   date,
		EventTime:   eventTime,
		Status:      entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Insert(ctx, tx, booking); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit admission transaction: %w", err)
	}

	s.log.Info("Booking committed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("decorator_id", req.DecoratorID),
		zap.String("event_date", req.EventDate),
		zap.String("event_time", req.EventTime),
	)

	return response.NewAdmissionOutcome(decision, booking), nil
}

func (s *bookingService) GetDecoratorBookings(ctx context.Context, decoratorID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	id, err := uuid.Parse(decoratorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	bookings, err := s.repo.Booking.FindByDecorator(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get decorator bookings",
			zap.Error(err),
			zap.String("decorator_id", decoratorID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get decorator bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByDecorator(ctx, id)
	if err != nil {
		s.log.Error("Failed to count decorator bookings", zap.Error(err))
		return nil, fmt.Errorf("count decorator bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

// UpdateStatus moves a booking along its status machine (confirm, reject,
// cancel). Transitions away from an active status free up capacity for
// later admissions immediately; the engine is not re-invoked.
func (s *bookingService) UpdateStatus(ctx context.Context, decoratorID, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	decoratorUUID, err := uuid.Parse(decoratorID)
	if err != nil {
		return fmt.Errorf("%w: invalid decorator ID %q", ErrValidation, decoratorID)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %q", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	if booking.DecoratorID != decoratorUUID {
		return fmt.Errorf("unauthorized to manage this booking")
	}

	status := entity.BookingStatus(req.Status)
	if !booking.Active() {
		return fmt.Errorf("booking status is %s, cannot change", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)

	return nil
}
