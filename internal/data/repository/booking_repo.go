package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the booking ledger: the system of record the
// admission engine reads and the only table admission writes to. Insert,
// CountActive and ListActiveTimes take an optional Querier so they can run
// inside the admission critical section's transaction (pass nil for the
// pool). Insert must never be called outside that critical section.
type BookingRepository interface {
	Insert(ctx context.Context, q database.Querier, booking *entity.Booking) error
	CountActive(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) (int, error)
	ListActiveTimes(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) ([]entity.MinuteOfDay, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByDecorator(ctx context.Context, decoratorID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByDecorator(ctx context.Context, decoratorID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) querier(q database.Querier) database.Querier {
	if q == nil {
		return r.db
	}
	return q
}

func (r *bookingRepository) Insert(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, decorator_id, client_name, client_email, service_type,
		                      event_date, event_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.querier(q).Exec(ctx, query,
		booking.ID,
		booking.DecoratorID,
		booking.ClientName,
		booking.ClientEmail,
		booking.ServiceType,
		booking.EventDate,
		int16(booking.EventTime),
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("decorator_id", booking.DecoratorID.String()),
			zap.String("event_date", booking.EventDate.Format("2006-01-02")),
		)
		return fmt.Errorf("insert booking for %s: %w", booking.DecoratorID.String(), err)
	}

	return nil
}

func (r *bookingRepository) CountActive(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE decorator_id = $1 AND event_date = $2 AND status IN ('pending', 'confirmed')
	`

	var count int
	err := r.querier(q).QueryRow(ctx, query, decoratorID, entity.DateOnly(date)).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
			zap.String("date", date.Format("2006-01-02")),
		)
		return 0, fmt.Errorf("count active bookings for %s: %w", decoratorID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) ListActiveTimes(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) ([]entity.MinuteOfDay, error) {
	query := `
		SELECT event_time
		FROM bookings
		WHERE decorator_id = $1 AND event_date = $2 AND status IN ('pending', 'confirmed')
		ORDER BY event_time
	`

	rows, err := r.querier(q).Query(ctx, query, decoratorID, entity.DateOnly(date))
	if err != nil {
		r.log.Error("Failed to list active booking times",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
			zap.String("date", date.Format("2006-01-02")),
		)
		return nil, fmt.Errorf("list active booking times for %s: %w", decoratorID.String(), err)
	}
	defer rows.Close()

	var times []entity.MinuteOfDay
	for rows.Next() {
		var minutes int16
		if err := rows.Scan(&minutes); err != nil {
			r.log.Error("Failed to scan booking time row", zap.Error(err))
			return nil, fmt.Errorf("scan booking time row: %w", err)
		}
		times = append(times, entity.MinuteOfDay(minutes))
	}

	return times, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, decorator_id, client_name, client_email, service_type,
		       event_date, event_time, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByDecorator(ctx context.Context, decoratorID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, decorator_id, client_name, client_email, service_type,
		       event_date, event_time, status, created_at, updated_at
		FROM bookings
		WHERE decorator_id = $1
		ORDER BY event_date DESC, event_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, decoratorID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by decorator",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings for %s: %w", decoratorID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByDecorator(ctx context.Context, decoratorID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE decorator_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, decoratorID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by decorator",
			zap.Error(err),
			zap.String("decorator_id", decoratorID.String()),
		)
		return 0, fmt.Errorf("count bookings for %s: %w", decoratorID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking entity.Booking
		minutes int16
	)

	err := row.Scan(
		&booking.ID,
		&booking.DecoratorID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ServiceType,
		&booking.EventDate,
		&minutes,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.EventTime = entity.MinuteOfDay(minutes)
	return &booking, nil
}
